package client

import (
	"context"
	"sync"
)

// SingletonState describes whether the tenant's single record exists
type SingletonState int

const (
	// StateUnknown means Load has not run yet
	StateUnknown SingletonState = iota
	// StateFound means the record exists and was loaded
	StateFound
	// StateNotFound means the tenant has no record yet; Save will create it
	StateNotFound
	// StateFailed means the fetch failed for a reason other than absence
	StateFailed
)

// SingletonEditor drives a whole-record form over a resource each tenant
// has at most one of, such as the home page or the footer disclaimers.
// Every save starts from the last fetched copy and resubmits the full
// record, so a screen editing one section cannot blank its siblings.
type SingletonEditor[T any] struct {
	client   *Client
	resource string
	// JSON switches the save requests from multipart form to JSON
	// bodies, for resources like disclaimers that carry no files.
	JSON bool

	mu         sync.RWMutex
	state      SingletonState
	record     T
	submitting bool

	notifications chan Notification
}

// NewSingletonEditor builds a SingletonEditor over the named resource,
// for example "home-page" or "disclaimers".
func NewSingletonEditor[T any](c *Client, resource string) *SingletonEditor[T] {
	return &SingletonEditor[T]{
		client:        c,
		resource:      resource,
		notifications: make(chan Notification, 16),
	}
}

// Notifications exposes the editor's notification stream
func (e *SingletonEditor[T]) Notifications() <-chan Notification {
	return e.notifications
}

// State returns the editor's record state
func (e *SingletonEditor[T]) State() SingletonState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Record returns the loaded record. Meaningful only in StateFound.
func (e *SingletonEditor[T]) Record() T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.record
}

// Submitting reports whether a save is in flight
func (e *SingletonEditor[T]) Submitting() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.submitting
}

// Load fetches the record. A 404 is not an error: it marks the editor
// StateNotFound so the next Save creates the record.
func (e *SingletonEditor[T]) Load(ctx context.Context) error {
	path, err := e.client.TenantPath(e.resource)
	if err != nil {
		return err
	}

	var record T
	err = e.client.Get(ctx, path, &record)
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case err == nil:
		e.state = StateFound
		e.record = record
		return nil
	case IsNotFound(err):
		e.state = StateNotFound
		return nil
	default:
		e.state = StateFailed
		return err
	}
}

// Save applies edit to a copy of the fetched record and submits the
// whole result, every field included. It POSTs when no record exists
// yet and PUTs otherwise, then refetches so the form shows stored
// state. Saving before a successful Load fetches first, so the editor
// knows whether to create or replace and what siblings to carry.
func (e *SingletonEditor[T]) Save(ctx context.Context, edit func(*T), files []File) error {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return nil
	}
	e.submitting = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.submitting = false
		e.mu.Unlock()
	}()

	if state := e.State(); state == StateUnknown || state == StateFailed {
		if err := e.Load(ctx); err != nil {
			return err
		}
	}

	e.mu.RLock()
	state := e.state
	record := e.record
	e.mu.RUnlock()

	if edit != nil {
		edit(&record)
	}

	path, err := e.client.TenantPath(e.resource)
	if err != nil {
		return err
	}

	create := state == StateNotFound
	switch {
	case create && e.JSON:
		err = e.client.PostJSON(ctx, path, &record, nil)
	case create:
		err = e.client.PostForm(ctx, path, &record, files, nil)
	case e.JSON:
		err = e.client.PutJSON(ctx, path, &record, nil)
	default:
		err = e.client.PutForm(ctx, path, &record, files, nil)
	}

	if err != nil {
		e.notify(false, errMessage(err))
		return err
	}

	if err := e.Load(ctx); err != nil {
		return err
	}
	e.notify(true, "Saved successfully")
	return nil
}

func (e *SingletonEditor[T]) notify(success bool, message string) {
	select {
	case e.notifications <- Notification{Success: success, Message: message}:
	default:
	}
}
