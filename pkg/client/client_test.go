package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	session, err := LoadSession(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return session
}

func authedSession(t *testing.T, tenantID uint) *Session {
	t.Helper()
	session := testSession(t)
	require.NoError(t, session.Set("test-token", tenantID, "owner@example.com"))
	return session
}

func TestClientSurfacesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Category name is required"})
	}))
	defer server.Close()

	c := New(server.URL, authedSession(t, 42))
	err := c.PostForm(context.Background(), "/tenants/42/categories", &CategoryForm{}, nil, nil)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Category name is required", apiErr.Message)
}

func TestClientFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(server.URL, authedSession(t, 42))
	err := c.Get(context.Background(), "/tenants/42/products", nil)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestClientInjectsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New(server.URL, authedSession(t, 42))
	require.NoError(t, c.Get(context.Background(), "/tenants/42/categories", nil))
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestClientClearsSessionOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid or expired token"})
	}))
	defer server.Close()

	session := authedSession(t, 42)
	c := New(server.URL, session)

	err := c.Get(context.Background(), "/tenants/42/categories", nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, session.Authenticated())
}

func TestLoginStoresSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "owner@example.com", body["email"])

		tenantID := uint(42)
		json.NewEncoder(w).Encode(LoginResponse{
			Token: "fresh-token",
			User: struct {
				ID       uint   `json:"id"`
				Email    string `json:"email"`
				TenantID *uint  `json:"tenant_id"`
				Role     string `json:"role"`
			}{ID: 3, Email: "owner@example.com", TenantID: &tenantID, Role: "owner"},
		})
	}))
	defer server.Close()

	session := testSession(t)
	c := New(server.URL, session)

	require.NoError(t, c.Login(context.Background(), "owner@example.com", "secret"))

	token, tenantID, err := session.Credentials()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, uint(42), tenantID)
}

func TestProbeSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/42" {
			json.NewEncoder(w).Encode(map[string]bool{"valid": true})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL, authedSession(t, 42))
	assert.True(t, c.ProbeSession(context.Background()))
}

func TestProbeSessionWithoutToken(t *testing.T) {
	c := New("http://127.0.0.1:0", testSession(t))
	assert.False(t, c.ProbeSession(context.Background()))
}

func TestTenantPathRequiresSession(t *testing.T) {
	c := New("http://127.0.0.1:0", testSession(t))
	_, err := c.TenantPath("categories")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
