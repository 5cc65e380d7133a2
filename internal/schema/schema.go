// Package schema describes the editable entities of the storefront so the
// console manager and the CSV importer share one set of field rules.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"ethela-storefront/internal/domain"
)

// Kind is the input type of a field.
type Kind string

const (
	KindText     Kind = "text"
	KindLongText Kind = "longtext"
	KindNumber   Kind = "number"
	KindBool     Kind = "bool"
)

// Field describes one editable attribute.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Default  string
}

// Form is raw, unvalidated form state keyed by field name.
type Form map[string]string

// Clone returns an independent copy of f.
func (f Form) Clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// FieldError is a single failing field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every failing field of a form.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// Unwrap lets callers match validation failures with domain.ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Descriptor binds an entity type to its fields and form conversions.
type Descriptor[T any] struct {
	Name     string
	Noun     string
	Label    string
	Plural   string
	Endpoint string
	Fields   []Field

	build  func(Form) T
	formOf func(T) Form
	idOf   func(T) string
}

// Blank returns a form holding every field's default.
func (d *Descriptor[T]) Blank() Form {
	f := make(Form, len(d.Fields))
	for _, fd := range d.Fields {
		f[fd.Name] = fd.Default
	}
	return f
}

// Field looks a field up by name.
func (d *Descriptor[T]) Field(name string) (Field, bool) {
	for _, fd := range d.Fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return Field{}, false
}

// Validate checks every field of f and reports all failures at once.
func (d *Descriptor[T]) Validate(f Form) error {
	var errs []FieldError
	for _, fd := range d.Fields {
		raw := strings.TrimSpace(f[fd.Name])
		if raw == "" {
			if fd.Required {
				errs = append(errs, FieldError{Field: fd.Name, Message: "is required"})
			}
			continue
		}
		switch fd.Kind {
		case KindNumber:
			if _, err := ParseNumber(raw); err != nil {
				errs = append(errs, FieldError{Field: fd.Name, Message: err.Error()})
			}
		case KindBool:
			if _, err := ParseBool(raw); err != nil {
				errs = append(errs, FieldError{Field: fd.Name, Message: err.Error()})
			}
		}
	}
	var unknown []string
	for name := range f {
		if _, ok := d.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		errs = append(errs, FieldError{Field: name, Message: "is not a known field"})
	}
	if len(errs) > 0 {
		return &ValidationError{Entity: d.Name, Fields: errs}
	}
	return nil
}

// Build validates f and converts it into a T.
func (d *Descriptor[T]) Build(f Form) (T, error) {
	if err := d.Validate(f); err != nil {
		var zero T
		return zero, err
	}
	return d.build(f), nil
}

// FormOf renders an existing value as form state.
func (d *Descriptor[T]) FormOf(v T) Form { return d.formOf(v) }

// IDOf returns the identifier of v.
func (d *Descriptor[T]) IDOf(v T) string { return d.idOf(v) }

var errNotNumber = errors.New("must be a non-negative number")

// ParseNumber parses a non-negative amount with at most two decimals, up to domain.MaxPrice.
func ParseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errNotNumber
	}
	if err := domain.CheckPrice(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseBool accepts true/false, 1/0, yes/no and on/off in any case.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "on":
		return true, nil
	case "false", "0", "no", "n", "off", "":
		return false, nil
	}
	return false, errors.New("must be true or false")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
