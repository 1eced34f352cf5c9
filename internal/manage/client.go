package manage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// Criteria mirrors the server's criteria record as the client sees it.
type Criteria struct {
	ID       int64  `json:"criteria_id"`
	Name     string `json:"criteria_name"`
	MaxScore int    `json:"max_score"`
}

// Client talks to the criteria API. The underlying http.Client keeps a
// cookie jar so the session cookie from Login is sent on every call.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a client. When hc is nil a cookie-jar client with a
// request timeout is built.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		jar, _ := cookiejar.New(nil)
		hc = &http.Client{Jar: jar, Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: baseURL, HTTP: hc}
}

// Login opens a session; the cookie lands in the client's jar.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apiError(resp, "login failed")
	}
	return nil
}

// List fetches the criteria set for an event.
func (c *Client) List(ctx context.Context, eventID int64) ([]Criteria, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/event/criteria/%d", c.BaseURL, eventID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, apiError(resp, "list failed")
	}

	var out struct {
		Criteria []Criteria `json:"criteria"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Criteria, nil
}

// CreateResult is the server's answer to a create call.
type CreateResult struct {
	Message  string
	Criteria Criteria
}

// Create adds a criteria; the returned record carries the server-issued id.
func (c *Client) Create(ctx context.Context, eventID int64, name string, maxScore int) (*CreateResult, error) {
	body, _ := json.Marshal(map[string]any{"criteria_name": name, "max_score": maxScore})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/event/criteria/%d", c.BaseURL, eventID), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, apiError(resp, "create failed")
	}

	var out struct {
		Message  string `json:"message"`
		Criteria struct {
			ID       int64  `json:"id"`
			Name     string `json:"name"`
			MaxScore int    `json:"max_score"`
		} `json:"criteria"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &CreateResult{
		Message:  out.Message,
		Criteria: Criteria{ID: out.Criteria.ID, Name: out.Criteria.Name, MaxScore: out.Criteria.MaxScore},
	}, nil
}

// Update replaces an existing criteria and returns the updated record.
func (c *Client) Update(ctx context.Context, id int64, name string, maxScore int) (*Criteria, error) {
	body, _ := json.Marshal(map[string]any{"criteria_name": name, "max_score": maxScore})
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, fmt.Sprintf("%s/api/event/criteria/update/%d", c.BaseURL, id), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, apiError(resp, "update failed")
	}

	var out Criteria
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// Delete removes a criteria.
func (c *Client) Delete(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/api/event/criteria/delete/%d", c.BaseURL, id), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apiError(resp, "delete failed")
	}
	return nil
}

// apiError extracts the server's error/message field, falling back to the
// HTTP status.
func apiError(resp *http.Response, op string) error {
	raw, _ := io.ReadAll(resp.Body)
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return fmt.Errorf("%s: %s", op, payload.Error)
		}
		if payload.Message != "" {
			return fmt.Errorf("%s: %s", op, payload.Message)
		}
	}
	return fmt.Errorf("%s: %s", op, resp.Status)
}
