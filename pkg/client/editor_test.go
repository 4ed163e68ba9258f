package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// categoryBackend is a minimal in-memory categories API for editor tests
type categoryBackend struct {
	t          *testing.T
	categories map[uint]*Category
	putCalls   int
}

func (b *categoryBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tenants/42/categories", func(w http.ResponseWriter, r *http.Request) {
		var list []Category
		for _, c := range b.categories {
			list = append(list, *c)
		}
		json.NewEncoder(w).Encode(list)
	})
	mux.HandleFunc("GET /tenants/42/categories/7", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(b.categories[7])
	})
	mux.HandleFunc("PUT /tenants/42/categories/7", func(w http.ResponseWriter, r *http.Request) {
		b.putCalls++
		require.NoError(b.t, r.ParseMultipartForm(8<<20))
		b.categories[7].Name = r.FormValue("name")
		b.categories[7].Status = r.FormValue("status")
		json.NewEncoder(w).Encode(b.categories[7])
	})
	mux.HandleFunc("POST /tenants/42/categories", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(b.t, r.ParseMultipartForm(8<<20))
		c := &Category{ID: 8, Name: r.FormValue("name"), Status: r.FormValue("status")}
		b.categories[8] = c
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(c)
	})
	mux.HandleFunc("DELETE /tenants/42/categories/7", func(w http.ResponseWriter, r *http.Request) {
		delete(b.categories, 7)
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	})
	return mux
}

func newCategoryEditor(t *testing.T) (*Editor[Category], *categoryBackend) {
	t.Helper()
	backend := &categoryBackend{
		t: t,
		categories: map[uint]*Category{
			7: {ID: 7, Name: "Skincare", Status: "active"},
		},
	}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	editor := NewEditor[Category](New(server.URL, authedSession(t, 42)), "categories")
	editor.Match = func(item Category, query string) bool {
		return MatchByName(item.Name, query)
	}
	return editor, backend
}

func TestEditorEditFlow(t *testing.T) {
	editor, backend := newCategoryEditor(t)
	ctx := context.Background()

	require.NoError(t, editor.Load(ctx))
	require.Len(t, editor.Items(), 1)
	assert.Equal(t, ModeList, editor.Mode())

	require.NoError(t, editor.BeginEdit(ctx, 7))
	assert.Equal(t, ModeEdit, editor.Mode())
	require.NotNil(t, editor.Current())
	assert.Equal(t, "Skincare", editor.Current().Name)

	err := editor.Save(ctx, &CategoryForm{Name: "Skin Care", Status: "active"}, nil)
	require.NoError(t, err)

	// The save PUT the form and refetched the collection
	assert.Equal(t, 1, backend.putCalls)
	assert.Equal(t, ModeList, editor.Mode())
	assert.Nil(t, editor.Current())

	items := editor.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Skin Care", items[0].Name)

	select {
	case n := <-editor.Notifications():
		assert.True(t, n.Success)
	default:
		t.Fatal("expected a success notification")
	}
}

func TestEditorCreateFlow(t *testing.T) {
	editor, _ := newCategoryEditor(t)
	ctx := context.Background()

	require.NoError(t, editor.Load(ctx))
	editor.BeginCreate()
	assert.Equal(t, ModeCreate, editor.Mode())
	assert.Nil(t, editor.Current())

	err := editor.Save(ctx, &CategoryForm{Name: "Supplements", Status: "active"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ModeList, editor.Mode())
	assert.Len(t, editor.Items(), 2)
}

func TestEditorCancelReturnsToList(t *testing.T) {
	editor, backend := newCategoryEditor(t)
	ctx := context.Background()

	require.NoError(t, editor.BeginEdit(ctx, 7))
	editor.Cancel()

	assert.Equal(t, ModeList, editor.Mode())
	assert.Nil(t, editor.Current())
	assert.Equal(t, 0, backend.putCalls)
}

func TestEditorDelete(t *testing.T) {
	editor, _ := newCategoryEditor(t)
	ctx := context.Background()

	require.NoError(t, editor.Load(ctx))
	require.NoError(t, editor.Delete(ctx, 7))
	assert.Empty(t, editor.Items())
}

func TestEditorSearchFiltersClientSide(t *testing.T) {
	editor, backend := newCategoryEditor(t)
	backend.categories[8] = &Category{ID: 8, Name: "Supplements", Status: "active"}
	ctx := context.Background()

	require.NoError(t, editor.Load(ctx))
	require.Len(t, editor.Items(), 2)

	editor.Search("skin")
	items := editor.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Skincare", items[0].Name)

	editor.Search("")
	assert.Len(t, editor.Items(), 2)
}

func TestEditorValidationBlocksRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode([]Category{})
	}))
	defer server.Close()

	editor := NewEditor[Category](New(server.URL, authedSession(t, 42)), "categories")
	editor.Validate = func(form interface{}) error {
		if form.(*CategoryForm).Name == "" {
			return errors.New("name is required")
		}
		return nil
	}
	editor.BeginCreate()

	err := editor.Save(context.Background(), &CategoryForm{}, nil)
	require.Error(t, err)

	// Nothing reached the backend
	assert.Equal(t, 0, requests)
	assert.Equal(t, ModeCreate, editor.Mode())
}

func TestEditorRequiresSession(t *testing.T) {
	session, err := LoadSession(t.TempDir() + "/session.json")
	require.NoError(t, err)

	editor := NewEditor[Category](New("http://127.0.0.1:0", session), "categories")
	assert.ErrorIs(t, editor.Load(context.Background()), ErrNotAuthenticated)
}

func TestEditorDeleteConfirmGate(t *testing.T) {
	editor, _ := newCategoryEditor(t)
	ctx := context.Background()

	require.NoError(t, editor.Load(ctx))
	editor.Confirm = func(id uint) bool { return false }

	require.NoError(t, editor.Delete(ctx, 7))
	assert.Len(t, editor.Items(), 1)

	editor.Confirm = func(id uint) bool { return true }
	require.NoError(t, editor.Delete(ctx, 7))
	assert.Empty(t, editor.Items())
}

func TestEditorSaveErrorKeepsForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Category name is required"})
			return
		}
		json.NewEncoder(w).Encode([]Category{})
	}))
	defer server.Close()

	editor := NewEditor[Category](New(server.URL, authedSession(t, 42)), "categories")
	editor.BeginCreate()

	err := editor.Save(context.Background(), &CategoryForm{}, nil)
	require.Error(t, err)

	// The form stays open so the user can correct it
	assert.Equal(t, ModeCreate, editor.Mode())
	assert.False(t, editor.Submitting())

	select {
	case n := <-editor.Notifications():
		assert.False(t, n.Success)
		assert.Equal(t, "Category name is required", n.Message)
	default:
		t.Fatal("expected an error notification")
	}
}
