// Package manager drives the admin list/add/edit/delete workflow for one
// entity type against a remote store.
package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	"ethela-storefront/internal/schema"
	"go.uber.org/zap"
)

// Store is the remote persistence surface for T.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id string, v T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a non-blocking message for the operator.
type Notification struct {
	Level       Level
	Title       string
	Description string
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(n Notification)
}

// Confirmer asks the operator a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Manager holds the list and form state for one entity type.
type Manager[T any] struct {
	desc    *schema.Descriptor[T]
	store   Store[T]
	notify  Notifier
	confirm Confirmer
	logger  *zap.Logger

	mu        sync.Mutex
	items     []T
	loading   bool
	form      schema.Form
	editingID string
	formOpen  bool
}

// New builds a Manager with a blank, closed form.
func New[T any](desc *schema.Descriptor[T], store Store[T], notifier Notifier, confirmer Confirmer, logger *zap.Logger) *Manager[T] {
	return &Manager[T]{
		desc:    desc,
		store:   store,
		notify:  notifier,
		confirm: confirmer,
		logger:  logging.OrNop(logger).Named(desc.Endpoint + "_manager"),
		form:    desc.Blank(),
	}
}

// Load replaces the items with the store's current list. On failure the
// previous items are kept.
func (m *Manager[T]) Load(ctx context.Context) error {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	items, err := m.store.List(ctx)

	m.mu.Lock()
	m.loading = false
	if err == nil {
		m.items = items
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.Warn("load failed", zap.Error(err))
		m.fail("Failed to fetch " + m.desc.Plural)
		return err
	}
	return nil
}

// Submit validates the form and inserts or updates depending on edit mode.
// Invalid forms never reach the store.
func (m *Manager[T]) Submit(ctx context.Context) error {
	m.mu.Lock()
	form := m.form.Clone()
	id := m.editingID
	m.mu.Unlock()

	v, err := m.desc.Build(form)
	if err != nil {
		m.fail(err.Error())
		return err
	}

	if id != "" {
		_, err = m.store.Update(ctx, id, v)
	} else {
		_, err = m.store.Insert(ctx, v)
	}
	if err != nil {
		m.logger.Warn("save failed", zap.String("id", id), zap.Error(err))
		m.fail("Failed to save " + m.desc.Name)
		return err
	}

	verb := "created"
	if id != "" {
		verb = "updated"
	}
	m.succeed(fmt.Sprintf("%s %s successfully", m.desc.Label, verb))

	m.mu.Lock()
	m.resetLocked()
	m.mu.Unlock()

	_ = m.Load(ctx)
	return nil
}

// Edit loads item into the form and enters edit mode.
func (m *Manager[T]) Edit(item T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = m.desc.FormOf(item)
	m.editingID = m.desc.IDOf(item)
	m.formOpen = true
}

// Open shows a blank add form.
func (m *Manager[T]) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = m.desc.Blank()
	m.editingID = ""
	m.formOpen = true
}

// Set writes one form field.
func (m *Manager[T]) Set(field, value string) error {
	if _, ok := m.desc.Field(field); !ok {
		return fmt.Errorf("%w: %s has no field %q", domain.ErrInvalidInput, m.desc.Name, field)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form[field] = value
	return nil
}

// ErrDeclined is returned by Delete when the operator does not confirm.
var ErrDeclined = errors.New("delete declined")

// Delete asks for confirmation, then removes id from the store.
func (m *Manager[T]) Delete(ctx context.Context, id string) error {
	if !m.confirm.Confirm(fmt.Sprintf("Are you sure you want to delete this %s?", m.desc.Noun)) {
		return ErrDeclined
	}
	if err := m.store.Delete(ctx, id); err != nil {
		m.logger.Warn("delete failed", zap.String("id", id), zap.Error(err))
		m.fail("Failed to delete " + m.desc.Name)
		return err
	}
	m.succeed(m.desc.Label + " deleted successfully")
	_ = m.Load(ctx)
	return nil
}

// Cancel discards the form and leaves edit mode.
func (m *Manager[T]) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

// Items returns a copy of the loaded items.
func (m *Manager[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Manager[T]) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Form returns a copy of the current form state.
func (m *Manager[T]) Form() schema.Form {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form.Clone()
}

func (m *Manager[T]) EditingID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editingID
}

func (m *Manager[T]) FormOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.formOpen
}

func (m *Manager[T]) resetLocked() {
	m.form = m.desc.Blank()
	m.editingID = ""
	m.formOpen = false
}

func (m *Manager[T]) succeed(title string) {
	m.notify.Notify(Notification{Level: LevelSuccess, Title: title})
}

func (m *Manager[T]) fail(description string) {
	m.notify.Notify(Notification{Level: LevelError, Title: "Error", Description: description})
}
