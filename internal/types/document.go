// Copyright 2025 bsonkit authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"log/slog"

	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// field represents a single Document field.
type field struct {
	value any
	name  string
}

// Document represents a BSON document a.k.a object:
// an ordered mapping of string keys to BSON values.
//
// Keys are expected to be unique when a document is assembled for encoding;
// that is the caller's responsibility.
// A document produced by the decoder may contain duplicate field names
// if the incoming byte stream did.
type Document struct {
	fields []field
}

// NewDocument creates a new Document from the given pairs of field names and values.
func NewDocument(pairs ...any) (*Document, error) {
	l := len(pairs)
	if l%2 != 0 {
		return nil, lazyerrors.Errorf("types.NewDocument: invalid number of arguments: %d", l)
	}

	doc := MakeDocument(l / 2)

	for i := 0; i < l; i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return nil, lazyerrors.Errorf("types.NewDocument: invalid field name type: %T", pairs[i])
		}

		if err := doc.Add(name, pairs[i+1]); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	return doc, nil
}

// MakeDocument creates a new empty Document with the given capacity.
func MakeDocument(cap int) *Document {
	return &Document{
		fields: make([]field, 0, cap),
	}
}

// Len returns the number of fields.
func (doc *Document) Len() int {
	return len(doc.fields)
}

// Entry returns the name and value of the i-th field.
//
// It panics if i is out of range.
func (doc *Document) Entry(i int) (string, any) {
	f := doc.fields[i]
	return f.name, f.value
}

// Get returns a value of the field with the given name.
//
// It returns nil if the field is not found.
// If the document contains duplicate field names, it returns the first one.
func (doc *Document) Get(name string) any {
	for _, f := range doc.fields {
		if f.name == name {
			return f.value
		}
	}

	return nil
}

// Has reports whether a field with the given name is present.
func (doc *Document) Has(name string) bool {
	for _, f := range doc.fields {
		if f.name == name {
			return true
		}
	}

	return false
}

// Keys returns a copy of field names in order.
func (doc *Document) Keys() []string {
	if len(doc.fields) == 0 {
		return nil
	}

	res := make([]string, len(doc.fields))
	for i, f := range doc.fields {
		res[i] = f.name
	}

	return res
}

// Values returns a copy of field values in order.
func (doc *Document) Values() []any {
	if len(doc.fields) == 0 {
		return nil
	}

	res := make([]any, len(doc.fields))
	for i, f := range doc.fields {
		res[i] = f.value
	}

	return res
}

// Add appends a new field to the Document.
//
// It does not check for duplicate names.
func (doc *Document) Add(name string, value any) error {
	if err := validateValue(value); err != nil {
		return lazyerrors.Errorf("%q: %w", name, err)
	}

	doc.fields = append(doc.fields, field{
		name:  name,
		value: value,
	})

	return nil
}

// Set sets the value of the field with the given name,
// replacing the first existing field with that name
// or appending a new field.
func (doc *Document) Set(name string, value any) error {
	if err := validateValue(value); err != nil {
		return lazyerrors.Errorf("%q: %w", name, err)
	}

	for i, f := range doc.fields {
		if f.name == name {
			doc.fields[i].value = value
			return nil
		}
	}

	doc.fields = append(doc.fields, field{
		name:  name,
		value: value,
	})

	return nil
}

// Remove removes the first existing field with the given name, doing nothing otherwise.
func (doc *Document) Remove(name string) {
	for i, f := range doc.fields {
		if f.name == name {
			doc.fields = append(doc.fields[:i], doc.fields[i+1:]...)
			return
		}
	}
}

// LogValue implements slog.LogValuer interface.
func (doc *Document) LogValue() slog.Value {
	return slogValue(doc, 1)
}

// LogMessage returns an indented representation as a string,
// somewhat similar (but not identical) to JSON or Go syntax.
// It may change over time.
func (doc *Document) LogMessage() string {
	return logMessage(doc, "", 1)
}

// check interfaces
var (
	_ slog.LogValuer = (*Document)(nil)
)
