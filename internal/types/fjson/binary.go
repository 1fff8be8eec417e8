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
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// binaryType represents BSON Binary data type.
type binaryType types.Binary

// fjsontype implements fjsontype interface.
func (bin *binaryType) fjsontype() {}

// binaryJSON is a JSON object representation of the binaryType.
type binaryJSON struct {
	B struct {
		Base64  string `json:"base64"`
		Subtype string `json:"subType"`
	} `json:"$binary"`
}

// MarshalJSON implements fjsontype interface.
func (bin *binaryType) MarshalJSON() ([]byte, error) {
	var j binaryJSON
	j.B.Base64 = base64.StdEncoding.EncodeToString(bin.B)
	j.B.Subtype = fmt.Sprintf("%02x", byte(bin.Subtype))

	res, err := json.Marshal(j)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// check interfaces
var (
	_ fjsontype = (*binaryType)(nil)
)
