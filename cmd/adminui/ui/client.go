package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a thin wrapper over the admin REST surface. The bearer token from
// login is replayed on every later call.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

type User struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	LastLogin string `json:"last_login"`
}

type LogEntry struct {
	ID           uint   `json:"id"`
	AdminName    string `json:"admin_name"`
	Action       string `json:"action"`
	TargetUserID *uint  `json:"target_user_id"`
	TargetItemID *uint  `json:"target_item_id"`
	IPAddress    string `json:"ip_address"`
	CreatedAt    string `json:"timestamp"`
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Login(email, password string) error {
	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	creds := map[string]string{"email": email, "password": password}
	if err := c.do(http.MethodPost, "/api/auth/login", creds, &out); err != nil {
		return err
	}
	if out.User.Role != "admin" {
		return fmt.Errorf("account %s is not an admin", email)
	}
	c.Token = out.Token
	return nil
}

func (c *Client) ListUsers() ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	err := c.do(http.MethodGet, "/api/admin/users", nil, &out)
	return out.Users, err
}

func (c *Client) Promote(id uint) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/admin/users/%d/promote", id), nil, nil)
}

func (c *Client) Demote(id uint) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/admin/users/%d/demote", id), nil, nil)
}

func (c *Client) ToggleStatus(id uint) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/admin/users/%d/toggle-status", id), nil, nil)
}

func (c *Client) DeleteUser(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil)
}

func (c *Client) Logs(limit int) ([]LogEntry, error) {
	var out struct {
		Logs []LogEntry `json:"logs"`
	}
	err := c.do(http.MethodGet, fmt.Sprintf("/api/admin/logs?limit=%d", limit), nil, &out)
	return out.Logs, err
}
