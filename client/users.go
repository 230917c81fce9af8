package client

import (
	"context"
	"fmt"
	"net/http"

	"itam/internal/models"
)

func (c *Client) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/user/signup", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// SignIn authenticates and installs the returned token on the client.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/user/signin", nil, body, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp.User, nil
}

// SignOut drops the session token. Purely client-side.
func (c *Client) SignOut() { c.ClearToken() }

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/getuser", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var resp struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/all", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"current_password": current, "new_password": next}
	return c.do(ctx, http.MethodPut, "/user/change-password", nil, body, nil)
}

func (c *Client) ToggleUserStatus(ctx context.Context, id uint) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	path := fmt.Sprintf("/user/toggle-status/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
