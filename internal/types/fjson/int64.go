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
	"encoding/json"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// int64Type represents BSON 64-bit integer type.
//
// Both promoted int64 values and types.Long values
// marshal through this wrapper.
type int64Type types.Long

// fjsontype implements fjsontype interface.
func (l *int64Type) fjsontype() {}

// int64JSON is a JSON object representation of the int64Type.
type int64JSON struct {
	L string `json:"$numberLong"`
}

// MarshalJSON implements fjsontype interface.
func (l *int64Type) MarshalJSON() ([]byte, error) {
	res, err := json.Marshal(int64JSON{
		L: types.Long(*l).String(),
	})
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// check interfaces
var (
	_ fjsontype = (*int64Type)(nil)
)
