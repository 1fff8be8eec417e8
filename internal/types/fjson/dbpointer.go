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

// dbPointerType represents the deprecated BSON DBPointer type.
type dbPointerType types.DBPointer

// fjsontype implements fjsontype interface.
func (dbp *dbPointerType) fjsontype() {}

// dbPointerJSON is a JSON object representation of the dbPointerType.
type dbPointerJSON struct {
	P struct {
		Ref string       `json:"$ref"`
		ID  objectIDJSON `json:"$id"`
	} `json:"$dbPointer"`
}

// MarshalJSON implements fjsontype interface.
func (dbp *dbPointerType) MarshalJSON() ([]byte, error) {
	var j dbPointerJSON
	j.P.Ref = dbp.NS
	j.P.ID.O = dbp.ID.Hex()

	res, err := json.Marshal(j)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// check interfaces
var (
	_ fjsontype = (*dbPointerType)(nil)
)
