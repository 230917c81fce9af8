package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"itam/internal/models"
)

// Categories returns the values for one category type, tolerating both
// list shapes via ParseCategoryList.
func (c *Client) Categories(ctx context.Context, categoryType string) ([]models.Category, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/categories/"+url.PathEscape(categoryType), nil, nil)
	if err != nil {
		return nil, err
	}
	return ParseCategoryList(data)
}

func (c *Client) AddCategory(ctx context.Context, categoryType, value string) (*models.Category, error) {
	body := map[string]string{"value": value}
	var resp struct {
		Data models.Category `json:"data"`
	}
	path := "/categories/" + url.PathEscape(categoryType)
	if err := c.do(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) DeleteCategory(ctx context.Context, categoryType string, id uint) error {
	path := fmt.Sprintf("/categories/%s/%d", url.PathEscape(categoryType), id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
