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

package bson

// EncodeOptions configures serialization.
//
// Passing nil to the entry points is equivalent to DefaultEncodeOptions().
type EncodeOptions struct {
	// CheckKeys rejects field names with a leading '$' or an embedded '.'.
	CheckKeys bool

	// IgnoreUndefined omits fields with the Undefined value
	// instead of encoding the deprecated Undefined tag.
	IgnoreUndefined bool

	// MinInternalBufferSize grows the shared internal buffer
	// to at least this size before writing.
	MinInternalBufferSize int
}

// DefaultEncodeOptions returns the default serialization options.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		IgnoreUndefined: true,
	}
}

// DecodeOptions configures deserialization.
//
// Passing nil to the entry points is equivalent to DefaultDecodeOptions().
type DecodeOptions struct {
	// FieldsAsRaw names fields whose document or array values are
	// returned as unparsed RawDocument / RawArray subtrees,
	// at any nesting depth.
	FieldsAsRaw map[string]bool

	// PromoteLongs returns 64-bit integers as int64;
	// when false they are returned as types.Long.
	PromoteLongs bool

	// PromoteValues enables binary subtype promotions:
	// 16-byte UUID binaries are returned as uuid.UUID values.
	// When false, every binary keeps its tagged type.
	PromoteValues bool

	// PromoteBuffers returns generic Binary values as raw []byte.
	// It has no effect when PromoteValues is false.
	PromoteBuffers bool

	// BSONRegExp keeps regular expressions as types.Regex.
	// When false, the decoder attempts *regexp.Regexp construction,
	// falling back to types.Regex for untranslatable flags.
	BSONRegExp bool

	// AllowObjectSmallerThanBufferSize accepts a buffer with trailing bytes
	// after the document's declared length.
	AllowObjectSmallerThanBufferSize bool
}

// DefaultDecodeOptions returns the default deserialization options.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{
		PromoteLongs:  true,
		PromoteValues: true,
		BSONRegExp:    true,
	}
}
