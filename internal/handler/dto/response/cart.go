package response

import (
	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/usecase/storefront"
)

type InstructorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type LocationResponse struct {
	Address string `json:"address"`
	MapLink string `json:"mapLink,omitempty"`
}

type CourseResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	Price           string             `json:"price"`
	Date            string             `json:"date"`
	StartTime       string             `json:"startTime"`
	DurationMinutes int                `json:"durationMinutes"`
	Instructor      InstructorResponse `json:"instructor"`
	Location        *LocationResponse  `json:"location,omitempty"`
}

type CartLineResponse struct {
	ID     string         `json:"id"`
	Qty    int            `json:"qty"`
	Course CourseResponse `json:"course"`
}

// Loaded is false while a signed-in visitor's server cart has not been fetched yet, so an empty
// Lines means "loading" rather than "empty". MergeBusy is true while guest lines are still being sent.
type CartResponse struct {
	Source             string             `json:"source"`
	Loaded             bool               `json:"loaded"`
	Revision           uint64             `json:"revision"`
	Lines              []CartLineResponse `json:"lines"`
	Count              int                `json:"count"`
	Subtotal           string             `json:"subtotal"`
	Authenticated      bool               `json:"authenticated"`
	MergeState         string             `json:"merge_state"`
	MergeBusy          bool               `json:"merge_busy"`
	CheckoutInProgress bool               `json:"checkout_in_progress"`
}

type AddToCartResponse struct {
	Added bool         `json:"added"`
	Cart  CartResponse `json:"cart"`
}

type RemoveFromCartResponse struct {
	Removed bool         `json:"removed"`
	Cart    CartResponse `json:"cart"`
}

type OrderResponse struct {
	ID    string `json:"id"`
	Paid  string `json:"paid"`
	Count int    `json:"count"`
}

func FromCartView(v *storefront.CartView) CartResponse {
	lines := make([]CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = FromLine(l)
	}
	return CartResponse{
		Source:             string(v.Source),
		Loaded:             v.Loaded,
		Revision:           v.Revision,
		Lines:              lines,
		Count:              len(lines),
		Subtotal:           v.Subtotal.StringFixed(2),
		Authenticated:      v.Authenticated,
		MergeState:         v.Merge.String(),
		MergeBusy:          v.Merge.IsBusy(),
		CheckoutInProgress: v.CheckoutInProgress,
	}
}

func FromLine(l cart.Line) CartLineResponse {
	course := CourseResponse{
		ID:              l.Course.ID,
		Title:           l.Course.Title,
		Description:     l.Course.Description,
		Price:           l.Course.Price.StringFixed(2),
		Date:            l.Course.Date,
		StartTime:       l.Course.StartTime,
		DurationMinutes: l.Course.DurationMinutes,
		Instructor: InstructorResponse{
			Name:  l.Course.Instructor.Name,
			Email: l.Course.Instructor.Email,
			Image: l.Course.Instructor.Image,
		},
	}
	if loc := l.Course.Location; loc != nil {
		course.Location = &LocationResponse{Address: loc.Address, MapLink: loc.MapLink}
	}
	return CartLineResponse{ID: l.ID, Qty: l.Qty, Course: course}
}

func FromOrder(o *cart.Order) OrderResponse {
	return OrderResponse{
		ID:    o.ID,
		Paid:  o.Paid.StringFixed(2),
		Count: o.Count,
	}
}
