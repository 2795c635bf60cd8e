package backend

import (
	"time"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/domain/user"
	"fitbook-storefront/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type lineDTO struct {
	ID     string    `json:"id"`
	Qty    int       `json:"qty"`
	Course courseDTO `json:"course"`
}

// price arrives as a JSON number from some endpoints and as a string from others; decimal accepts both.
type courseDTO struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Date            string          `json:"date"`
	StartTime       string          `json:"startTime"`
	DurationMinutes int             `json:"durationMinutes"`
	Instructor      instructorDTO   `json:"instructor" copier:"-"`
	Location        *locationDTO    `json:"location" copier:"-"`
}

type instructorDTO struct {
	User  *instructorUserDTO `json:"user"`
	Image string             `json:"image"`
}

type instructorUserDTO struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type locationDTO struct {
	Address string `json:"address"`
	MapLink string `json:"mapLink"`
}

type userDTO struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at"`
}

type orderDTO struct {
	ID    string          `json:"id"`
	Paid  decimal.Decimal `json:"paid"`
	Count int             `json:"count"`
}

type tokenDTO struct {
	Token string `json:"token"`
}

type addToCartDTO struct {
	CourseID string `json:"courseId"`
}

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerDTO struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type purchasedDTO struct {
	Purchased bool `json:"purchased"`
}

func (d courseDTO) toDomain() (cart.Course, error) {
	var course cart.Course
	if err := copier.Copy(&course, &d); err != nil {
		return cart.Course{}, errs.Wrap(err, "map course")
	}

	course.Instructor = cart.Instructor{Image: d.Instructor.Image}
	if u := d.Instructor.User; u != nil {
		course.Instructor.Name = u.FullName
		course.Instructor.Email = u.Email
	}
	if d.Location != nil {
		course.Location = &cart.Location{}
		if err := copier.Copy(course.Location, d.Location); err != nil {
			return cart.Course{}, errs.Wrap(err, "map course location")
		}
	}
	return course, nil
}

func (d lineDTO) toDomain() (cart.Line, error) {
	course, err := d.Course.toDomain()
	if err != nil {
		return cart.Line{}, err
	}
	qty := d.Qty
	if qty < 1 {
		qty = 1
	}
	return cart.Line{ID: d.ID, Qty: qty, Course: course}, nil
}

func toLines(dtos []lineDTO) (cart.Lines, error) {
	lines := make(cart.Lines, 0, len(dtos))
	for _, d := range dtos {
		line, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	// 重複やコースIDの欠落はここで吸収する
	normalized, _ := lines.Normalize()
	return normalized, nil
}

// Unknown roles fall back to the least privileged one.
func (d userDTO) toDomain() *user.User {
	role, err := user.NewRole(d.Role)
	if err != nil {
		role = user.RoleSubscriber
	}
	return user.NewUser(d.ID, d.FullName, d.Email, role, d.CreatedAt)
}
