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

// javaScriptType represents BSON JavaScript code type.
type javaScriptType types.JavaScript

// fjsontype implements fjsontype interface.
func (js *javaScriptType) fjsontype() {}

// javaScriptJSON is a JSON object representation of the javaScriptType.
type javaScriptJSON struct {
	C string `json:"$code"`
}

// MarshalJSON implements fjsontype interface.
func (js *javaScriptType) MarshalJSON() ([]byte, error) {
	res, err := json.Marshal(javaScriptJSON{
		C: js.Code,
	})
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// codeWithScopeType represents BSON JavaScript code with scope type.
type codeWithScopeType types.CodeWithScope

// fjsontype implements fjsontype interface.
func (c *codeWithScopeType) fjsontype() {}

// MarshalJSON implements fjsontype interface.
//
// The scope document is written by hand to keep its field order.
func (c *codeWithScopeType) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"$code":`)
	buf.Write(must.NotFail(json.Marshal(c.Code)))
	buf.WriteString(`,"$scope":`)

	b, err := Marshal(c.Scope)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	buf.Write(b)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// symbolType represents the deprecated BSON Symbol type.
type symbolType types.Symbol

// fjsontype implements fjsontype interface.
func (s *symbolType) fjsontype() {}

// symbolJSON is a JSON object representation of the symbolType.
type symbolJSON struct {
	S string `json:"$symbol"`
}

// MarshalJSON implements fjsontype interface.
func (s *symbolType) MarshalJSON() ([]byte, error) {
	res, err := json.Marshal(symbolJSON{
		S: string(*s),
	})
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// check interfaces
var (
	_ fjsontype = (*javaScriptType)(nil)
	_ fjsontype = (*codeWithScopeType)(nil)
	_ fjsontype = (*symbolType)(nil)
)
