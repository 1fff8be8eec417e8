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

import (
	"encoding/binary"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// FindRawDocument returns the first BSON document in the byte slice.
// nil is returned if the slice is too short or the document is malformed.
//
// Use that function only to find the boundary of the first document
// in a stream of documents; use Deserialize to validate and decode it.
func FindRawDocument(b []byte) RawDocument {
	if len(b) < 5 {
		return nil
	}

	dl := int(int32(binary.LittleEndian.Uint32(b)))
	if dl < 5 || len(b) < dl {
		return nil
	}

	if b[dl-1] != 0 {
		return nil
	}

	return RawDocument(b[:dl])
}

// DecodeRawDocument decodes a raw document captured by FieldsAsRaw
// or FindRawDocument.
func DecodeRawDocument(raw RawDocument, opts *DecodeOptions) (*types.Document, error) {
	doc, err := Deserialize(raw, opts)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// DecodeRawArray decodes a raw array captured by FieldsAsRaw.
func DecodeRawArray(raw RawArray, opts *DecodeOptions) (*types.Array, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	b, err := frameDocument(raw, false)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	arr, err := decodeArray(b, opts)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return arr, nil
}

// DeserializeStream decodes up to numDocuments back-to-back documents
// from b, starting at startIndex, storing them into docs at docsStartIndex.
// It returns the index in b right after the last decoded document.
//
// docs must have room for the requested documents.
// nil opts mean default options.
func DeserializeStream(b []byte, startIndex, numDocuments int, docs []*types.Document, docsStartIndex int, opts *DecodeOptions) (int, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	if startIndex < 0 || startIndex > len(b) {
		return startIndex, lazyerrors.Errorf("start index %d of %d bytes: %w", startIndex, len(b), ErrDecodeInvalidInput)
	}

	index := startIndex

	for i := 0; i < numDocuments; i++ {
		raw, err := frameDocument(b[index:], true)
		if err != nil {
			return index, lazyerrors.Error(err)
		}

		doc, err := decodeDocument(raw, opts)
		if err != nil {
			return index, lazyerrors.Error(err)
		}

		docs[docsStartIndex+i] = doc
		index += len(raw)
	}

	return index, nil
}
