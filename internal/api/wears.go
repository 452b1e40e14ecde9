package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/shared/apperr"
)

// Upload is an image attachment streamed into the multipart form.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// WearInput carries the catalog create/update form. Image is optional on
// update; required-field presence is checked by the caller before sending.
// Price is gte-only: zero is a legal price, and required fails on it.
type WearInput struct {
	WearName    string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Description string  `validate:"required"`
	Category    string  `validate:"required"`
	Image       *Upload
}

func (c *Client) ListWears(ctx context.Context) ([]models.Wear, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/wears/", nil, "", false)
	if err != nil {
		return nil, err
	}
	var out []models.Wear
	if err := c.doJSON(req, &out, "Failed to fetch wears"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateWear(ctx context.Context, in WearInput) (models.Wear, error) {
	body, contentType, err := wearForm(in)
	if err != nil {
		return models.Wear{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/wears/", body, contentType, false)
	if err != nil {
		return models.Wear{}, err
	}
	var out models.Wear
	if err := c.doJSON(req, &out, "Failed to create wear"); err != nil {
		return models.Wear{}, err
	}
	return out, nil
}

func (c *Client) UpdateWear(ctx context.Context, id int, in WearInput) (models.Wear, error) {
	body, contentType, err := wearForm(in)
	if err != nil {
		return models.Wear{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/wears/%d/", id), body, contentType, false)
	if err != nil {
		return models.Wear{}, err
	}
	var out models.Wear
	if err := c.doJSON(req, &out, "Failed to update wear"); err != nil {
		return models.Wear{}, err
	}
	return out, nil
}

func (c *Client) DeleteWear(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/wears/%d/", id), nil, "", false)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil, "Failed to delete wear")
}

func wearForm(in WearInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"wearName":    in.WearName,
		"price":       strconv.FormatFloat(in.Price, 'f', -1, 64),
		"description": in.Description,
		"category":    in.Category,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", apperr.Wrap(err)
		}
	}

	if in.Image != nil {
		part, err := w.CreateFormFile("image", in.Image.Filename)
		if err != nil {
			return nil, "", apperr.Wrap(err)
		}
		if _, err := io.Copy(part, in.Image.Reader); err != nil {
			return nil, "", apperr.Wrap(err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", apperr.Wrap(err)
	}
	return &buf, w.FormDataContentType(), nil
}
