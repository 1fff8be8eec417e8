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

// Package bson implements encoding and decoding of BSON as defined by
// https://bsonspec.org/spec.html.
//
// The document model is provided by the types package;
// scalar wire primitives come from cristalhq/bson/bsonproto.
// The encoding is little-endian throughout.
//
// Serialize shares one growable buffer across calls behind a mutex;
// SerializeWithBufferAndIndex writes into a caller-provided buffer and
// never touches shared state.
package bson

import (
	"github.com/cristalhq/bson/bsonproto"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

var (
	// ErrDecodeShortInput indicates that the input buffer ends before the encoding does.
	ErrDecodeShortInput = bsonproto.ErrDecodeShortInput

	// ErrDecodeInvalidInput indicates a structurally invalid encoding
	// (bad length prefix, missing terminator, and similar).
	ErrDecodeInvalidInput = bsonproto.ErrDecodeInvalidInput

	// ErrUnknownTag indicates an unrecognized type tag in the input.
	ErrUnknownTag = lazyerrors.New("unknown BSON type tag")

	// ErrCyclicDocument indicates that a document contains itself.
	ErrCyclicDocument = lazyerrors.New("cyclic document structure")

	// ErrInvalidKey indicates a field name rejected by key checking.
	ErrInvalidKey = lazyerrors.New("invalid document key")

	// ErrInvalidCString indicates a NUL byte in a value that is encoded NUL-terminated.
	ErrInvalidCString = lazyerrors.New("string contains a NUL byte")

	// ErrBufferTooSmall indicates that a caller-provided buffer cannot hold the document.
	ErrBufferTooSmall = lazyerrors.New("buffer too small")
)

type (
	// RawDocument represents a BSON document in the binary encoded form.
	//
	// It generally references a part of a larger slice, not a copy.
	RawDocument = types.RawDocument

	// RawArray represents a BSON array in the binary encoded form.
	RawArray = types.RawArray
)
