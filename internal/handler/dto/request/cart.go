package request

type AddToCartRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}
