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

// Array represents a BSON array: an ordered sequence of BSON values.
type Array struct {
	elements []any
}

// NewArray creates a new Array from the given values.
func NewArray(values ...any) (*Array, error) {
	arr := MakeArray(len(values))

	for _, v := range values {
		if err := arr.Append(v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	return arr, nil
}

// MakeArray creates a new empty Array with the given capacity.
func MakeArray(cap int) *Array {
	return &Array{
		elements: make([]any, 0, cap),
	}
}

// Len returns the number of elements.
func (arr *Array) Len() int {
	return len(arr.elements)
}

// Get returns the i-th element.
//
// It panics if i is out of range.
func (arr *Array) Get(i int) any {
	return arr.elements[i]
}

// Set sets the i-th element.
//
// It panics if i is out of range.
func (arr *Array) Set(i int, value any) error {
	if err := validateValue(value); err != nil {
		return lazyerrors.Errorf("[%d]: %w", i, err)
	}

	arr.elements[i] = value

	return nil
}

// Append appends given values to the Array.
func (arr *Array) Append(values ...any) error {
	for _, v := range values {
		if err := validateValue(v); err != nil {
			return lazyerrors.Error(err)
		}

		arr.elements = append(arr.elements, v)
	}

	return nil
}

// LogValue implements slog.LogValuer interface.
func (arr *Array) LogValue() slog.Value {
	return slogValue(arr, 1)
}

// LogMessage returns an indented representation as a string.
func (arr *Array) LogMessage() string {
	return logMessage(arr, "", 1)
}

// check interfaces
var (
	_ slog.LogValuer = (*Array)(nil)
)
