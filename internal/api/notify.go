package api

import (
	"context"
	"net/http"
)

type notifyBody struct {
	ID    int    `json:"id"`
	Email string `json:"email,omitempty"`
}

// Completion notifications are anonymous endpoints: the backend mails the
// purchaser, nothing comes back beyond success.

func (c *Client) NotifyShopOrderCompleted(ctx context.Context, id int, email string) error {
	body, err := jsonBody(notifyBody{ID: id, Email: email})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/notifications/shop-order-completed/", body, "application/json", false)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil, "notifyShopOrderCompleted failed")
}

func (c *Client) NotifyCustomOrderCompleted(ctx context.Context, id int, email string) error {
	body, err := jsonBody(notifyBody{ID: id, Email: email})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/notifications/custom-order-completed/", body, "application/json", false)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil, "notifyCustomOrderCompleted failed")
}
