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
	"strconv"
	"time"

	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// dateTimeType represents BSON UTC datetime type,
// milliseconds since the Unix epoch.
type dateTimeType time.Time

// fjsontype implements fjsontype interface.
func (dt *dateTimeType) fjsontype() {}

// dateTimeJSON is a JSON object representation of the dateTimeType.
type dateTimeJSON struct {
	D struct {
		L string `json:"$numberLong"`
	} `json:"$date"`
}

// MarshalJSON implements fjsontype interface.
func (dt *dateTimeType) MarshalJSON() ([]byte, error) {
	var j dateTimeJSON
	j.D.L = strconv.FormatInt(time.Time(*dt).UnixMilli(), 10)

	res, err := json.Marshal(j)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// check interfaces
var (
	_ fjsontype = (*dateTimeType)(nil)
)
