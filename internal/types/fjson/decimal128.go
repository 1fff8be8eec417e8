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

// decimal128Type represents BSON 128-bit decimal floating point type.
type decimal128Type types.Decimal128

// fjsontype implements fjsontype interface.
func (d *decimal128Type) fjsontype() {}

// decimal128JSON is a JSON object representation of the decimal128Type.
type decimal128JSON struct {
	D string `json:"$numberDecimal"`
}

// MarshalJSON implements fjsontype interface.
func (d *decimal128Type) MarshalJSON() ([]byte, error) {
	res, err := json.Marshal(decimal128JSON{
		D: types.Decimal128(*d).String(),
	})
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// check interfaces
var (
	_ fjsontype = (*decimal128Type)(nil)
)
