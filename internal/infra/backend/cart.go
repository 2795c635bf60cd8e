package backend

import (
	"context"
	"net/http"
	"net/url"

	"fitbook-storefront/internal/domain/cart"
	"fitbook-storefront/internal/infra"
)

func (c *Client) GetCart(ctx context.Context, token string) (cart.Lines, error) {
	var dtos []lineDTO
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &dtos); err != nil {
		return nil, err
	}
	lines, err := toLines(dtos)
	if err != nil {
		return nil, infra.NewBackendError(infra.KindDecode, http.StatusOK, "", err)
	}
	return lines, nil
}

func (c *Client) AddToCart(ctx context.Context, token, courseID string) error {
	return c.do(ctx, http.MethodPost, "/cart", token, addToCartDTO{CourseID: courseID}, nil)
}

func (c *Client) RemoveItem(ctx context.Context, token, courseID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+url.PathEscape(courseID), token, nil, nil)
}

func (c *Client) Checkout(ctx context.Context, token string) (*cart.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodPost, "/orders/checkout", token, nil, &dto); err != nil {
		return nil, err
	}
	return &cart.Order{ID: dto.ID, Paid: dto.Paid, Count: dto.Count}, nil
}
