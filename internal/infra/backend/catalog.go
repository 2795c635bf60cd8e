package backend

import (
	"context"
	"net/http"
	"net/url"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/infra"
)

// GetCourse is public; no token is sent.
func (c *Client) GetCourse(ctx context.Context, courseID string) (*cart.Course, error) {
	var dto courseDTO
	if err := c.do(ctx, http.MethodGet, "/courses/"+url.PathEscape(courseID), "", nil, &dto); err != nil {
		return nil, err
	}
	course, err := dto.toDomain()
	if err != nil {
		return nil, infra.NewBackendError(infra.KindDecode, http.StatusOK, "", err)
	}
	return &course, nil
}

func (c *Client) HasPurchased(ctx context.Context, token, courseID string) (bool, error) {
	var dto purchasedDTO
	path := "/orders/check?" + url.Values{"courseId": {courseID}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, token, nil, &dto); err != nil {
		return false, err
	}
	return dto.Purchased, nil
}
