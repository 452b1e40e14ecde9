package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Hosannah10/julidsfashion-admin/internal/models"
)

func (c *Client) ListCustomOrders(ctx context.Context) ([]models.CustomOrder, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/custom-orders/", nil, "application/json", true)
	if err != nil {
		return nil, err
	}
	var out []models.CustomOrder
	if err := c.doJSON(req, &out, "Failed to fetch orders"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomOrder(ctx context.Context, id int) (models.CustomOrder, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/custom-orders/%d/", id), nil, "application/json", true)
	if err != nil {
		return models.CustomOrder{}, err
	}
	var out models.CustomOrder
	if err := c.doJSON(req, &out, "Failed to fetch order"); err != nil {
		return models.CustomOrder{}, err
	}
	return out, nil
}

func (c *Client) UpdateCustomOrderStatus(ctx context.Context, id int, status models.Status) (models.CustomOrder, error) {
	body, err := jsonBody(statusBody{Status: status})
	if err != nil {
		return models.CustomOrder{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPatch, fmt.Sprintf("/custom-orders/%d/status/", id), body, "application/json", true)
	if err != nil {
		return models.CustomOrder{}, err
	}
	var out models.CustomOrder
	if err := c.doJSON(req, &out, "Failed to update order"); err != nil {
		return models.CustomOrder{}, err
	}
	return out, nil
}

func (c *Client) DeleteCustomOrder(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/custom-orders/%d/", id), nil, "application/json", true)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil, "deleteCustomOrder failed")
}
