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

package fjson

import (
	"bytes"
	"encoding/json"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
	"github.com/lucsoft/bsonkit/internal/util/must"
)

// documentType represents BSON Document type.
type documentType types.Document

// fjsontype implements fjsontype interface.
func (doc *documentType) fjsontype() {}

// MarshalJSON implements fjsontype interface.
//
// Duplicate keys are written out as-is; JSON consumers may reject them.
func (doc *documentType) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	td := types.Document(*doc)
	for i := 0; i < td.Len(); i++ {
		if i != 0 {
			buf.WriteByte(',')
		}

		name, v := td.Entry(i)

		buf.Write(must.NotFail(json.Marshal(name)))
		buf.WriteByte(':')

		b, err := Marshal(v)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		buf.Write(b)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// check interfaces
var (
	_ fjsontype = (*documentType)(nil)
)
