// Package store contains the record store adapters. A Query describes one fetch in
// backend-neutral terms; each adapter compiles it into its own query language.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/tasteit/tasteit/backend/internal/model"
)

// ErrUnavailable is matched by every error that comes out of a failed fetch
var ErrUnavailable = errors.New("record store unavailable")

// Error reports a failed store operation
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

// Unwrap exposes both the unavailability category and the underlying cause
func (e *Error) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// Store is the capability the retrieval service needs from a backend
type Store interface {
	// Fetch runs q and returns the matching recipes in the requested order
	Fetch(ctx context.Context, q Query) ([]model.MatchResult, error)
	// Ping checks that the backend is reachable
	Ping(ctx context.Context) error
}

// Pattern is the structural shape a query matches
type Pattern int

const (
	// RecipesOnly matches every recipe node
	RecipesOnly Pattern = iota
	// RecipesWithCreator matches recipes connected to the user that created them
	RecipesWithCreator
)

// Field is a scalar recipe attribute that can be pushed down to the store
type Field string

const (
	FieldID         Field = "id"
	FieldName       Field = "name"
	FieldCountry    Field = "country"
	FieldDifficulty Field = "difficulty"
	FieldRating     Field = "rating"
)

func (f Field) textual() bool {
	return f == FieldName || f == FieldCountry
}

// Op is a comparison operator
type Op int

const (
	// Contains is a case-insensitive substring test, text fields only
	Contains Op = iota
	// Equals is an equality test
	Equals
)

// Predicate is one pushed-down where clause. When Optional is set and Value is nil the
// clause holds for every record.
type Predicate struct {
	Field    Field
	Op       Op
	Value    any
	Optional bool
}

// Order is the ordering applied to fetched records
type Order int

const (
	// ByDateCreatedDesc orders newest first
	ByDateCreatedDesc Order = iota
	// Random orders by a fresh random key per invocation
	Random
	// Unordered leaves ordering to the backend
	Unordered
)

// Query describes one fetch. Skip and Limit of zero mean no skip and no limit.
type Query struct {
	Pattern Pattern
	Where   []Predicate
	Order   Order
	Skip    int
	Limit   int
}

// Validate checks that the query can be compiled by every backend
func (q Query) Validate() error {
	if q.Skip < 0 {
		return fmt.Errorf("negative skip %d", q.Skip)
	}
	if q.Limit < 0 {
		return fmt.Errorf("negative limit %d", q.Limit)
	}
	if q.Order == Random && q.Skip > 0 {
		return errors.New("skip is not supported with random ordering")
	}
	for _, p := range q.Where {
		switch p.Field {
		case FieldID, FieldName, FieldCountry, FieldDifficulty, FieldRating:
		default:
			return fmt.Errorf("unsupported field %q", p.Field)
		}
		if p.Op == Contains && !p.Field.textual() {
			return fmt.Errorf("contains is not supported on %s", p.Field)
		}
		if p.Value == nil && !p.Optional {
			return fmt.Errorf("missing value for %s", p.Field)
		}
	}
	return nil
}

// Optional helpers used to build null-tolerant predicates from pointer inputs

// OptionalText returns a null-tolerant substring predicate on field
func OptionalText(field Field, value *string) Predicate {
	p := Predicate{Field: field, Op: Contains, Optional: true}
	if value != nil {
		p.Value = *value
	}
	return p
}

// OptionalInt returns a null-tolerant equality predicate on an integer field
func OptionalInt(field Field, value *int) Predicate {
	p := Predicate{Field: field, Op: Equals, Optional: true}
	if value != nil {
		p.Value = int64(*value)
	}
	return p
}

// OptionalFloat returns a null-tolerant equality predicate on a float field
func OptionalFloat(field Field, value *float64) Predicate {
	p := Predicate{Field: field, Op: Equals, Optional: true}
	if value != nil {
		p.Value = *value
	}
	return p
}
