package client

import (
	"context"
	"fmt"
	"sync"
)

// Mode is the editor's current screen
type Mode int

const (
	// ModeList shows the item table
	ModeList Mode = iota
	// ModeCreate shows an empty form
	ModeCreate
	// ModeEdit shows a form pre-filled from an existing item
	ModeEdit
)

// Notification is a transient user-facing message emitted after an
// operation finishes.
type Notification struct {
	Success bool
	Message string
}

// Identifiable is implemented by every editable resource
type Identifiable interface {
	GetID() uint
}

// Editor drives a list-plus-form screen over one tenant-scoped resource
// collection. T is the resource as the backend returns it.
type Editor[T Identifiable] struct {
	client   *Client
	resource string
	// Match decides whether an item satisfies a search query. Nil
	// disables client-side search.
	Match func(item T, query string) bool
	// Validate runs before a save. When it returns an error nothing is
	// sent over the wire and the form stays open.
	Validate func(form interface{}) error
	// Confirm gates deletions. Nil means delete without asking.
	Confirm func(id uint) bool

	mu         sync.RWMutex
	mode       Mode
	items      []T
	current    *T
	query      string
	submitting bool

	notifications chan Notification
}

// NewEditor builds an Editor over the named resource collection, for
// example "categories" or "products".
func NewEditor[T Identifiable](c *Client, resource string) *Editor[T] {
	return &Editor[T]{
		client:        c,
		resource:      resource,
		mode:          ModeList,
		notifications: make(chan Notification, 16),
	}
}

// Notifications exposes the editor's notification stream
func (e *Editor[T]) Notifications() <-chan Notification {
	return e.notifications
}

// Mode returns the editor's current mode
func (e *Editor[T]) Mode() Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// Submitting reports whether a save is in flight. The form is expected
// to stay disabled while it is true.
func (e *Editor[T]) Submitting() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.submitting
}

// Current returns the item being edited, or nil in list/create mode
func (e *Editor[T]) Current() *T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Items returns the loaded items, filtered by the active search query
func (e *Editor[T]) Items() []T {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.query == "" || e.Match == nil {
		out := make([]T, len(e.items))
		copy(out, e.items)
		return out
	}

	var out []T
	for _, item := range e.items {
		if e.Match(item, e.query) {
			out = append(out, item)
		}
	}
	return out
}

// Search sets the client-side filter query
func (e *Editor[T]) Search(query string) {
	e.mu.Lock()
	e.query = query
	e.mu.Unlock()
}

// Load fetches the collection from the backend
func (e *Editor[T]) Load(ctx context.Context) error {
	path, err := e.client.TenantPath(e.resource)
	if err != nil {
		return err
	}

	var items []T
	if err := e.client.Get(ctx, path, &items); err != nil {
		e.notify(false, errMessage(err))
		return err
	}

	e.mu.Lock()
	e.items = items
	e.mu.Unlock()
	return nil
}

// BeginCreate switches to an empty form
func (e *Editor[T]) BeginCreate() {
	e.mu.Lock()
	e.mode = ModeCreate
	e.current = nil
	e.mu.Unlock()
}

// BeginEdit fetches one item and switches to the pre-filled form
func (e *Editor[T]) BeginEdit(ctx context.Context, id uint) error {
	path, err := e.client.TenantPath(e.resource, fmt.Sprintf("%d", id))
	if err != nil {
		return err
	}

	var item T
	if err := e.client.Get(ctx, path, &item); err != nil {
		e.notify(false, errMessage(err))
		return err
	}

	e.mu.Lock()
	e.mode = ModeEdit
	e.current = &item
	e.mu.Unlock()
	return nil
}

// Cancel abandons the form and returns to the list
func (e *Editor[T]) Cancel() {
	e.mu.Lock()
	e.mode = ModeList
	e.current = nil
	e.mu.Unlock()
}

// Save submits the form. In create mode it POSTs a new item; in edit
// mode it PUTs the item being edited. On success the collection is
// refetched and the editor returns to the list.
func (e *Editor[T]) Save(ctx context.Context, form interface{}, files []File) error {
	if e.Validate != nil {
		if err := e.Validate(form); err != nil {
			e.notify(false, err.Error())
			return err
		}
	}

	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return nil
	}
	e.submitting = true
	mode := e.mode
	current := e.current
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.submitting = false
		e.mu.Unlock()
	}()

	var err error
	switch mode {
	case ModeCreate:
		var path string
		path, err = e.client.TenantPath(e.resource)
		if err == nil {
			err = e.client.PostForm(ctx, path, form, files, nil)
		}
	case ModeEdit:
		if current == nil {
			return fmt.Errorf("no item selected for edit")
		}
		var path string
		path, err = e.client.TenantPath(e.resource, fmt.Sprintf("%d", (*current).GetID()))
		if err == nil {
			err = e.client.PutForm(ctx, path, form, files, nil)
		}
	default:
		return fmt.Errorf("editor is not in a form mode")
	}

	if err != nil {
		e.notify(false, errMessage(err))
		return err
	}

	if err := e.Load(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	e.mode = ModeList
	e.current = nil
	e.mu.Unlock()
	e.notify(true, "Saved successfully")
	return nil
}

// Delete removes one item and refetches the collection
func (e *Editor[T]) Delete(ctx context.Context, id uint) error {
	if e.Confirm != nil && !e.Confirm(id) {
		return nil
	}

	path, err := e.client.TenantPath(e.resource, fmt.Sprintf("%d", id))
	if err != nil {
		return err
	}

	if err := e.client.Delete(ctx, path); err != nil {
		e.notify(false, errMessage(err))
		return err
	}

	if err := e.Load(ctx); err != nil {
		return err
	}
	e.notify(true, "Deleted successfully")
	return nil
}

func (e *Editor[T]) notify(success bool, message string) {
	select {
	case e.notifications <- Notification{Success: success, Message: message}:
	default:
	}
}

// errMessage extracts the backend's message from an error when it has
// one, falling back to the raw error text.
func errMessage(err error) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
