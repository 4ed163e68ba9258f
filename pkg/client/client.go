package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/schema"
)

// File is a multipart file attachment for form requests
type File struct {
	Field   string
	Name    string
	Content io.Reader
}

// Client talks to the backoffice API. It injects the session's bearer
// token on every request and drops the session when the backend answers
// 401, forcing the caller back to the login screen.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
	encoder *schema.Encoder
}

// New builds a Client for the given API base URL
func New(baseURL string, session *Session) *Client {
	encoder := schema.NewEncoder()
	encoder.SetAliasTag("form")

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
		session: session,
		encoder: encoder,
	}
}

// Session exposes the client's session store
func (c *Client) Session() *Session {
	return c.session
}

// TenantPath builds a tenant-scoped API path like /tenants/42/categories
func (c *Client) TenantPath(parts ...string) (string, error) {
	_, tenantID, err := c.session.Credentials()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/tenants/%d/%s", tenantID, strings.Join(parts, "/")), nil
}

// Get issues a GET request and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// PostJSON issues a POST request with a JSON body
func (c *Client) PostJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

// PutJSON issues a PUT request with a JSON body
func (c *Client) PutJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

// PostForm issues a POST request with a multipart form body. The form
// struct's fields are encoded under their form tags; files are attached
// under their own field names.
func (c *Client) PostForm(ctx context.Context, path string, form interface{}, files []File, out interface{}) error {
	return c.sendForm(ctx, http.MethodPost, path, form, files, out)
}

// PutForm issues a PUT request with a multipart form body
func (c *Client) PutForm(ctx context.Context, path string, form interface{}, files []File, out interface{}) error {
	return c.sendForm(ctx, http.MethodPut, path, form, files, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json", out)
}

func (c *Client) sendForm(ctx context.Context, method, path string, form interface{}, files []File, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if form != nil {
		values := url.Values{}
		if err := c.encoder.Encode(form, values); err != nil {
			return fmt.Errorf("encode form: %w", err)
		}
		for field, fieldValues := range values {
			for _, value := range fieldValues {
				if err := writer.WriteField(field, value); err != nil {
					return err
				}
			}
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("copy file %s: %w", file.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	return c.do(ctx, method, path, &buf, writer.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != nil && c.session.Authenticated() {
		token, _, _ := c.session.Credentials()
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized && c.session != nil {
			// The token is no longer valid; drop the session so the
			// caller lands on the login screen.
			c.session.Clear()
		}
		return newAPIError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// LoginResponse is the backend's answer to a successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       uint   `json:"id"`
		Email    string `json:"email"`
		TenantID *uint  `json:"tenant_id"`
		Role     string `json:"role"`
	} `json:"user"`
}

// Login authenticates against the backend and stores the session
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp LoginResponse
	err := c.PostJSON(ctx, "/users/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}

	tenantID := uint(0)
	if resp.User.TenantID != nil {
		tenantID = *resp.User.TenantID
	}
	return c.session.Set(resp.Token, tenantID, resp.User.Email)
}

// ProbeSession asks the backend whether the stored token still grants
// access to the stored tenant. Any failure means the caller should show
// the login screen.
func (c *Client) ProbeSession(ctx context.Context) bool {
	_, tenantID, err := c.session.Credentials()
	if err != nil {
		return false
	}
	if err := c.Get(ctx, fmt.Sprintf("/users/%d", tenantID), nil); err != nil {
		return false
	}
	return true
}

// Logout drops the stored session
func (c *Client) Logout() error {
	return c.session.Clear()
}
