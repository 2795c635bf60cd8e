package cart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCourseID = errors.New("invalid course id")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type Line struct {
	ID     string
	Qty    int
	Course Course
}

// NewGuestLine builds a line for the anonymous cart with a locally generated id.
func NewGuestLine(course Course) (Line, error) {
	if _, err := NewCourseID(course.ID); err != nil {
		return Line{}, err
	}
	return Line{
		ID:     uuid.NewString(),
		Qty:    1,
		Course: course,
	}, nil
}

func (l Line) Total() decimal.Decimal {
	qty := l.Qty
	if qty < 1 {
		qty = 1
	}
	return l.Course.Price.Mul(decimal.NewFromInt(int64(qty)))
}

// Lines keeps course ids unique.
type Lines []Line

func (ls Lines) Contains(courseID string) bool {
	return ls.index(courseID) >= 0
}

// With returns a new slice with line appended, or the receiver unchanged when the course is already present.
func (ls Lines) With(line Line) (Lines, bool) {
	if ls.Contains(line.Course.ID) {
		return ls, false
	}
	out := make(Lines, 0, len(ls)+1)
	out = append(out, ls...)
	return append(out, line), true
}

func (ls Lines) Without(courseID string) (Lines, bool) {
	i := ls.index(courseID)
	if i < 0 {
		return ls, false
	}
	out := make(Lines, 0, len(ls)-1)
	out = append(out, ls[:i]...)
	return append(out, ls[i+1:]...), true
}

func (ls Lines) CourseIDs() []string {
	ids := make([]string, len(ls))
	for i, l := range ls {
		ids[i] = l.Course.ID
	}
	return ids
}

func (ls Lines) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		total = total.Add(l.Total())
	}
	return total
}

// Normalize drops lines without a course id, fixes non-positive quantities and collapses duplicates.
func (ls Lines) Normalize() (Lines, int) {
	out := make(Lines, 0, len(ls))
	dropped := 0
	for _, l := range ls {
		if _, err := NewCourseID(l.Course.ID); err != nil {
			dropped++
			continue
		}
		if l.Qty < 1 {
			l.Qty = 1
		}
		var added bool
		if out, added = out.With(l); !added {
			dropped++
		}
	}
	return out, dropped
}

func (ls Lines) index(courseID string) int {
	for i, l := range ls {
		if l.Course.ID == courseID {
			return i
		}
	}
	return -1
}
