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
	"math"
	"strconv"

	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// doubleType represents BSON 64-bit binary floating point type.
type doubleType float64

// fjsontype implements fjsontype interface.
func (d *doubleType) fjsontype() {}

// doubleJSON is a JSON object representation of the doubleType.
type doubleJSON struct {
	D string `json:"$numberDouble"`
}

// formatDouble renders f the way canonical Extended JSON expects.
func formatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// parseDouble is the inverse of formatDouble.
func parseDouble(s string) (float64, error) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, lazyerrors.Error(err)
	}

	return f, nil
}

// MarshalJSON implements fjsontype interface.
func (d *doubleType) MarshalJSON() ([]byte, error) {
	res, err := json.Marshal(doubleJSON{
		D: formatDouble(float64(*d)),
	})
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// check interfaces
var (
	_ fjsontype = (*doubleType)(nil)
)
