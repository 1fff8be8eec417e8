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

// Package bsonkit implements encoding and decoding of BSON documents.
//
// The binary codec lives in internal/bson, the value model in
// internal/types; this package re-exports the public surface.
package bsonkit

import (
	"github.com/lucsoft/bsonkit/internal/bson"
	"github.com/lucsoft/bsonkit/internal/types"
)

// Value model types.
type (
	// Document represents a BSON document: an ordered collection of fields.
	Document = types.Document

	// Array represents a BSON array.
	Array = types.Array

	// Binary represents BSON Binary data.
	Binary = types.Binary

	// BinarySubtype represents the subtype of Binary data.
	BinarySubtype = types.BinarySubtype

	// ObjectID represents a BSON ObjectId.
	ObjectID = types.ObjectID

	// Regex represents a BSON regular expression.
	Regex = types.Regex

	// Timestamp represents a BSON Timestamp.
	Timestamp = types.Timestamp

	// Long represents a BSON 64-bit integer with a signedness interpretation.
	Long = types.Long

	// Decimal128 represents a BSON 128-bit decimal floating point value.
	Decimal128 = types.Decimal128

	// JavaScript represents BSON JavaScript code.
	JavaScript = types.JavaScript

	// CodeWithScope represents BSON JavaScript code with a scope document.
	CodeWithScope = types.CodeWithScope

	// Symbol represents the deprecated BSON Symbol type.
	Symbol = types.Symbol

	// DBPointer represents the deprecated BSON DBPointer type.
	DBPointer = types.DBPointer

	// NullType represents BSON Null. Use the Null value.
	NullType = types.NullType

	// UndefinedType represents BSON Undefined. Use the Undefined value.
	UndefinedType = types.UndefinedType

	// MinKeyType represents BSON MinKey. Use the MinKey value.
	MinKeyType = types.MinKeyType

	// MaxKeyType represents BSON MaxKey. Use the MaxKey value.
	MaxKeyType = types.MaxKeyType

	// RawDocument represents a BSON document in the binary encoded form.
	RawDocument = types.RawDocument

	// RawArray represents a BSON array in the binary encoded form.
	RawArray = types.RawArray
)

// Codec options.
type (
	// EncodeOptions control serialization.
	EncodeOptions = bson.EncodeOptions

	// DecodeOptions control deserialization.
	DecodeOptions = bson.DecodeOptions
)

// Singleton values.
var (
	// Null is the BSON Null value.
	Null = types.Null

	// Undefined is the deprecated BSON Undefined value.
	Undefined = types.Undefined

	// MinKey is the BSON MinKey value.
	MinKey = types.MinKey

	// MaxKey is the BSON MaxKey value.
	MaxKey = types.MaxKey
)

// Codec errors.
var (
	// ErrDecodeShortInput indicates that the input ends before the encoding does.
	ErrDecodeShortInput = bson.ErrDecodeShortInput

	// ErrDecodeInvalidInput indicates a structurally invalid encoding.
	ErrDecodeInvalidInput = bson.ErrDecodeInvalidInput

	// ErrUnknownTag indicates an unrecognized type tag in the input.
	ErrUnknownTag = bson.ErrUnknownTag

	// ErrCyclicDocument indicates that a document contains itself.
	ErrCyclicDocument = bson.ErrCyclicDocument

	// ErrInvalidKey indicates a field name rejected by key checking.
	ErrInvalidKey = bson.ErrInvalidKey

	// ErrInvalidCString indicates a NUL byte in a NUL-terminated value.
	ErrInvalidCString = bson.ErrInvalidCString

	// ErrBufferTooSmall indicates that a provided buffer cannot hold the document.
	ErrBufferTooSmall = bson.ErrBufferTooSmall
)

// Value model constructors.
var (
	// NewDocument creates a document from name/value pairs.
	NewDocument = types.NewDocument

	// MakeDocument creates an empty document with the given capacity.
	MakeDocument = types.MakeDocument

	// NewArray creates an array of given values.
	NewArray = types.NewArray

	// MakeArray creates an empty array with the given capacity.
	MakeArray = types.MakeArray

	// NewObjectID generates a new unique ObjectID.
	NewObjectID = types.NewObjectID

	// NewObjectIDFromHex creates an ObjectID from its 24-character hex form.
	NewObjectIDFromHex = types.NewObjectIDFromHex

	// NewObjectIDFromTime generates an ObjectID with the given timestamp part.
	NewObjectIDFromTime = types.NewObjectIDFromTime

	// NewLong creates a signed Long.
	NewLong = types.NewLong

	// NewULong creates an unsigned Long.
	NewULong = types.NewULong

	// ParseLong parses a decimal string into a Long.
	ParseLong = types.ParseLong

	// ParseDecimal128 parses a decimal floating point string.
	ParseDecimal128 = types.ParseDecimal128

	// NewTimestamp creates a Timestamp from seconds and ordinal.
	NewTimestamp = types.NewTimestamp

	// BinaryFromUUID creates a Binary with the UUID subtype.
	BinaryFromUUID = types.BinaryFromUUID

	// DefaultEncodeOptions returns the default serialization options.
	DefaultEncodeOptions = bson.DefaultEncodeOptions

	// DefaultDecodeOptions returns the default deserialization options.
	DefaultDecodeOptions = bson.DefaultDecodeOptions
)

// Serialize encodes the document into a freshly allocated byte slice,
// using a shared internal buffer as scratch space.
// nil opts mean default options.
func Serialize(doc *Document, opts *EncodeOptions) ([]byte, error) {
	return bson.Serialize(doc, opts)
}

// SerializeWithBufferAndIndex encodes the document into buf starting at
// startIndex and returns the index of the last byte written.
// It does not touch shared state.
func SerializeWithBufferAndIndex(doc *Document, buf []byte, opts *EncodeOptions, startIndex int) (int, error) {
	return bson.SerializeWithBufferAndIndex(doc, buf, opts, startIndex)
}

// CalculateObjectSize returns the encoded size of the document in bytes.
func CalculateObjectSize(doc *Document, opts *EncodeOptions) int {
	return bson.CalculateObjectSize(doc, opts)
}

// SetInternalBufferSize resizes the shared buffer used by Serialize.
func SetInternalBufferSize(size int) {
	bson.SetInternalBufferSize(size)
}

// Deserialize decodes a single document from b.
// nil opts mean default options.
func Deserialize(b []byte, opts *DecodeOptions) (*Document, error) {
	return bson.Deserialize(b, opts)
}

// DeserializeStream decodes numDocuments back-to-back documents from b,
// starting at startIndex, into docs at docsStartIndex.
// It returns the index in b right after the last decoded document.
func DeserializeStream(b []byte, startIndex, numDocuments int, docs []*Document, docsStartIndex int, opts *DecodeOptions) (int, error) {
	return bson.DeserializeStream(b, startIndex, numDocuments, docs, docsStartIndex, opts)
}
