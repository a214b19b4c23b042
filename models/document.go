package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Document is a read-only snapshot of a note taken from the document
// provider at query time. The ranking engine never mutates documents;
// it only reads them by ID.
type Document struct {
	// ID is the vault-relative path of the document, e.g. "projects/go.md".
	ID string `json:"id" validate:"required"`
	// Name is the display name shown in result lists. Falls back to the
	// file basename when no title is present in the frontmatter.
	Name string `json:"name" validate:"required"`
	// Links holds the IDs of documents this document links to, in
	// appearance order. Duplicates are permitted.
	Links []string `json:"links,omitempty"`
	// Meta is the document's frontmatter, keyed by property name.
	Meta Metadata `json:"meta,omitempty"`
	// Tags are the document's tags, without the leading '#'.
	Tags []string `json:"tags,omitempty"`
}

// Metadata maps property names to scalar-or-list values.
type Metadata map[string]Value

// Value is a frontmatter property value: either a single scalar or a
// sequence of scalars. Scalars are carried as strings; the filter engine
// compares them case-insensitively.
type Value struct {
	scalar string
	list   []string
	isList bool
}

// String returns a scalar Value.
func String(s string) Value {
	return Value{scalar: s}
}

// Strings returns a list Value.
func Strings(ss ...string) Value {
	return Value{list: append([]string(nil), ss...), isList: true}
}

// IsList reports whether the value is a sequence.
func (v Value) IsList() bool {
	return v.isList
}

// Scalar returns the scalar form. ok is false for list values.
func (v Value) Scalar() (s string, ok bool) {
	if v.isList {
		return "", false
	}
	return v.scalar, true
}

// List returns a copy of the list form. A scalar value yields a
// single-element list, so callers can treat every value uniformly.
func (v Value) List() []string {
	if v.isList {
		return append([]string(nil), v.list...)
	}
	return []string{v.scalar}
}

// Any reports whether fn holds for any element of the value. Scalars
// are treated as single-element lists.
func (v Value) Any(fn func(string) bool) bool {
	if !v.isList {
		return fn(v.scalar)
	}
	for _, s := range v.list {
		if fn(s) {
			return true
		}
	}
	return false
}

// MarshalJSON encodes scalars as JSON strings and lists as arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.scalar)
}

// UnmarshalJSON accepts a string or an array of strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = String(s)
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return fmt.Errorf("metadata value must be a string or string array: %w", err)
	}
	*v = Strings(ss...)
	return nil
}

// global validator instance, shared by the constructors in this package.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
