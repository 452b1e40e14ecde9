package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Hosannah10/julidsfashion-admin/internal/models"
)

type statusBody struct {
	Status models.Status `json:"status"`
}

func (c *Client) ListShopOrders(ctx context.Context) ([]models.ShopOrder, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/shop-orders/", nil, "application/json", true)
	if err != nil {
		return nil, err
	}
	var out []models.ShopOrder
	if err := c.doJSON(req, &out, "Failed to fetch orders"); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateShopOrderStatus sends the requested status as-is; the backend is
// the one that validates it. The server's returned record is handed back so
// callers can patch from it instead of the locally requested value.
func (c *Client) UpdateShopOrderStatus(ctx context.Context, id int, status models.Status) (models.ShopOrder, error) {
	body, err := jsonBody(statusBody{Status: status})
	if err != nil {
		return models.ShopOrder{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPatch, fmt.Sprintf("/shop-orders/%d/status/", id), body, "application/json", true)
	if err != nil {
		return models.ShopOrder{}, err
	}
	var out models.ShopOrder
	if err := c.doJSON(req, &out, "Failed to update order"); err != nil {
		return models.ShopOrder{}, err
	}
	return out, nil
}

func (c *Client) DeleteShopOrder(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/shop-orders/%d/", id), nil, "application/json", true)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil, "deleteShopOrder failed")
}
