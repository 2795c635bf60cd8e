package guestcart

import (
	"encoding/json"

	"fitbook-storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

// persisted shape matches what browsers stored under "guest_cart" before the BFF existed.
type lineRecord struct {
	ID     string       `json:"id"`
	Qty    int          `json:"qty"`
	Course courseRecord `json:"course"`
}

type courseRecord struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	Date            string           `json:"date"`
	StartTime       string           `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Instructor      instructorRecord `json:"instructor"`
	Location        *locationRecord  `json:"location,omitempty"`
}

// instructor is stored nested under "user" like the backend sends it. A flat name/email is accepted on read.
type instructorRecord struct {
	User  *instructorUserRecord `json:"user,omitempty"`
	Name  string                `json:"name,omitempty"`
	Email string                `json:"email,omitempty"`
	Image string                `json:"image,omitempty"`
}

type instructorUserRecord struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type locationRecord struct {
	Address string `json:"address"`
	MapLink string `json:"mapLink,omitempty"`
}

func encode(lines cart.Lines) ([]byte, error) {
	records := make([]lineRecord, len(lines))
	for i, l := range lines {
		records[i] = toRecord(l)
	}
	return json.Marshal(records)
}

func decode(payload []byte) (cart.Lines, error) {
	var records []lineRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	lines := make(cart.Lines, len(records))
	for i, r := range records {
		lines[i] = fromRecord(r)
	}
	return lines, nil
}

func toRecord(l cart.Line) lineRecord {
	rec := lineRecord{
		ID:  l.ID,
		Qty: l.Qty,
		Course: courseRecord{
			ID:              l.Course.ID,
			Title:           l.Course.Title,
			Description:     l.Course.Description,
			Price:           l.Course.Price,
			Date:            l.Course.Date,
			StartTime:       l.Course.StartTime,
			DurationMinutes: l.Course.DurationMinutes,
			Instructor: instructorRecord{
				User: &instructorUserRecord{
					FullName: l.Course.Instructor.Name,
					Email:    l.Course.Instructor.Email,
				},
				Image: l.Course.Instructor.Image,
			},
		},
	}
	if loc := l.Course.Location; loc != nil {
		rec.Course.Location = &locationRecord{Address: loc.Address, MapLink: loc.MapLink}
	}
	return rec
}

func fromRecord(r lineRecord) cart.Line {
	line := cart.Line{
		ID:  r.ID,
		Qty: r.Qty,
		Course: cart.Course{
			ID:              r.Course.ID,
			Title:           r.Course.Title,
			Description:     r.Course.Description,
			Price:           r.Course.Price,
			Date:            r.Course.Date,
			StartTime:       r.Course.StartTime,
			DurationMinutes: r.Course.DurationMinutes,
			Instructor: r.Course.Instructor.toDomain(),
		},
	}
	if loc := r.Course.Location; loc != nil {
		line.Course.Location = &cart.Location{Address: loc.Address, MapLink: loc.MapLink}
	}
	return line
}

func (r instructorRecord) toDomain() cart.Instructor {
	in := cart.Instructor{Name: r.Name, Email: r.Email, Image: r.Image}
	if r.User != nil {
		in.Name = r.User.FullName
		in.Email = r.User.Email
	}
	return in
}
