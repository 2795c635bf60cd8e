package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Instructor struct {
	Name  string
	Email string
	Image string
}

type Location struct {
	Address string
	MapLink string
}

// Course is a snapshot captured when the line was added. Display only; price authority stays with the backend.
type Course struct {
	ID              string
	Title           string
	Description     string
	Price           decimal.Decimal
	Date            string
	StartTime       string
	DurationMinutes int
	Instructor      Instructor
	Location        *Location
}

func NewCourseID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidCourseID
	}
	return s, nil
}
