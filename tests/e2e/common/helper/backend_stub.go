//go:build e2e

package helper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const StubPassword = "password123"

type StubCourse struct {
	ID         string
	Title      string
	Price      string
	Instructor string
}

type stubUser struct {
	id       string
	fullName string
	email    string
	password string
}

// StubBackend は予約バックエンドの最小限の代役。トークンは本物の HS256 JWT を発行する
type StubBackend struct {
	Server *httptest.Server
	secret []byte

	mu        sync.Mutex
	courses   map[string]StubCourse
	users     map[string]*stubUser // email -> user
	tokens    map[string]string    // token -> user id
	carts     map[string][]string  // user id -> course ids
	purchased map[string]map[string]bool
	full      map[string]bool
	orders    int

	// CartDown makes every cart mutation answer 503.
	CartDown atomic.Bool
	adds     atomic.Int32
}

func NewStubBackend(secret string) *StubBackend {
	b := &StubBackend{secret: []byte(secret)}
	b.Reset()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", b.login)
	mux.HandleFunc("POST /auth/register", b.register)
	mux.HandleFunc("GET /auth/me", b.me)
	mux.HandleFunc("POST /auth/logout", b.logout)
	mux.HandleFunc("GET /cart", b.getCart)
	mux.HandleFunc("POST /cart", b.addToCart)
	mux.HandleFunc("DELETE /cart/{id}", b.removeFromCart)
	mux.HandleFunc("POST /orders/checkout", b.checkout)
	mux.HandleFunc("GET /orders/check", b.checkPurchased)
	mux.HandleFunc("GET /courses/{id}", b.getCourse)
	b.Server = httptest.NewServer(mux)
	return b
}

func (b *StubBackend) URL() string { return b.Server.URL }

func (b *StubBackend) Close() { b.Server.Close() }

// Reset restores the seed catalog and the single seeded account.
func (b *StubBackend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.courses = map[string]StubCourse{
		"yoga-101":    {ID: "yoga-101", Title: "Morning Yoga", Price: "15.00", Instructor: "Aiko Tanaka"},
		"pilates-201": {ID: "pilates-201", Title: "Core Pilates", Price: "22.50", Instructor: "Ken Mori"},
		"hiit-301":    {ID: "hiit-301", Title: "HIIT Express", Price: "12.00", Instructor: "Aiko Tanaka"},
	}
	b.users = map[string]*stubUser{
		"mika@example.com": {id: "user-mika", fullName: "Mika Sato", email: "mika@example.com", password: StubPassword},
	}
	b.tokens = map[string]string{}
	b.carts = map[string][]string{}
	b.purchased = map[string]map[string]bool{}
	b.full = map[string]bool{}
	b.orders = 0
	b.CartDown.Store(false)
	b.adds.Store(0)
}

func (b *StubBackend) SeedServerCart(email string, courseIDs ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u := b.users[email]
	b.carts[u.id] = append(b.carts[u.id], courseIDs...)
}

func (b *StubBackend) MarkFull(courseID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.full[courseID] = true
}

func (b *StubBackend) ServerCart(email string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[email]
	if !ok {
		return nil
	}
	return slices.Clone(b.carts[u.id])
}

func (b *StubBackend) Purchased(email, courseID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[email]
	if !ok {
		return false
	}
	return b.purchased[u.id][courseID]
}

// AddCalls counts POST /cart requests, including the rejected ones.
func (b *StubBackend) AddCalls() int {
	return int(b.adds.Load())
}

// ------------------------------------------------------------
// handlers
// ------------------------------------------------------------

func (b *StubBackend) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[body.Email]
	if !ok || u.password != body.Password {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	b.issue(w, http.StatusOK, u)
}

func (b *StubBackend) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[body.Email]; exists {
		writeMessage(w, http.StatusConflict, "Email already registered")
		return
	}
	u := &stubUser{id: "user-" + uuid.NewString(), fullName: body.FullName, email: body.Email, password: body.Password}
	b.users[body.Email] = u
	b.issue(w, http.StatusCreated, u)
}

// issue must be called with mu held.
func (b *StubBackend) issue(w http.ResponseWriter, status int, u *stubUser) {
	claims := jwt.RegisteredClaims{
		Subject:   u.id,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	b.tokens[token] = u.id
	writeJSON(w, status, map[string]string{"token": token})
}

func (b *StubBackend) me(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.userOf(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        u.id,
		"full_name": u.fullName,
		"email":     u.email,
		"role":      "subscriber",
	})
}

func (b *StubBackend) logout(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tokens, bearer(r))
	w.WriteHeader(http.StatusNoContent)
}

func (b *StubBackend) getCart(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.userOf(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	lines := make([]map[string]any, 0, len(b.carts[u.id]))
	for i, id := range b.carts[u.id] {
		lines = append(lines, map[string]any{
			"id":     u.id + "-" + id + "-" + string(rune('a'+i)),
			"qty":    1,
			"course": b.courseJSON(b.courses[id]),
		})
	}
	writeJSON(w, http.StatusOK, lines)
}

func (b *StubBackend) addToCart(w http.ResponseWriter, r *http.Request) {
	b.adds.Add(1)
	if b.CartDown.Load() {
		writeMessage(w, http.StatusServiceUnavailable, "maintenance")
		return
	}

	var body struct {
		CourseID string `json:"courseId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.userOf(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	switch {
	case b.courses[body.CourseID].ID == "":
		writeMessage(w, http.StatusNotFound, "Course not found")
	case b.full[body.CourseID]:
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": []string{"Course is full"}})
	case slices.Contains(b.carts[u.id], body.CourseID):
		writeMessage(w, http.StatusConflict, "Course already in cart")
	default:
		b.carts[u.id] = append(b.carts[u.id], body.CourseID)
		w.WriteHeader(http.StatusCreated)
	}
}

func (b *StubBackend) removeFromCart(w http.ResponseWriter, r *http.Request) {
	if b.CartDown.Load() {
		writeMessage(w, http.StatusServiceUnavailable, "maintenance")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.userOf(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id := r.PathValue("id")
	i := slices.Index(b.carts[u.id], id)
	if i < 0 {
		writeMessage(w, http.StatusNotFound, "Not in cart")
		return
	}
	b.carts[u.id] = slices.Delete(b.carts[u.id], i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

func (b *StubBackend) checkout(w http.ResponseWriter, r *http.Request) {
	if b.CartDown.Load() {
		writeMessage(w, http.StatusServiceUnavailable, "maintenance")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.userOf(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	ids := b.carts[u.id]
	if len(ids) == 0 {
		writeMessage(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	if b.purchased[u.id] == nil {
		b.purchased[u.id] = map[string]bool{}
	}
	paid := 0.0
	for _, id := range ids {
		b.purchased[u.id][id] = true
		paid += priceOf(b.courses[id].Price)
	}
	b.carts[u.id] = nil
	b.orders++
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    "order-" + uuid.NewString(),
		"paid":  paid,
		"count": len(ids),
	})
}

func (b *StubBackend) checkPurchased(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.userOf(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"purchased": b.purchased[u.id][r.URL.Query().Get("courseId")]})
}

func (b *StubBackend) getCourse(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.courses[r.PathValue("id")]
	if !ok {
		writeMessage(w, http.StatusNotFound, "Course not found")
		return
	}
	writeJSON(w, http.StatusOK, b.courseJSON(c))
}

// userOf must be called with mu held.
func (b *StubBackend) userOf(r *http.Request) (*stubUser, bool) {
	id, ok := b.tokens[bearer(r)]
	if !ok {
		return nil, false
	}
	for _, u := range b.users {
		if u.id == id {
			return u, true
		}
	}
	return nil, false
}

func (b *StubBackend) courseJSON(c StubCourse) map[string]any {
	return map[string]any{
		"id":              c.ID,
		"title":           c.Title,
		"price":           c.Price,
		"date":            "2026-11-01",
		"startTime":       "09:00",
		"durationMinutes": 60,
		"instructor": map[string]any{
			"user":  map[string]string{"full_name": c.Instructor, "email": strings.ToLower(strings.Fields(c.Instructor)[0]) + "@example.com"},
			"image": "/img/" + c.ID + ".png",
		},
		"location": map[string]string{"address": "1-2-3 Shibuya", "mapLink": "https://maps.example/" + c.ID},
	}
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func priceOf(s string) float64 {
	var f float64
	_ = json.Unmarshal([]byte(s), &f)
	return f
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
