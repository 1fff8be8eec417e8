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
	"math"
	"strconv"
	"time"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
	"github.com/lucsoft/bsonkit/internal/util/must"
)

// relaxedDateFormat covers dates renderable as ISO-8601 strings.
const relaxedDateFormat = "2006-01-02T15:04:05.999Z"

// MarshalRelaxed encodes given built-in or types' package value
// into relaxed Extended JSON.
//
// Numbers become plain JSON numbers, in-range dates become ISO-8601
// strings; everything else matches Marshal.
func MarshalRelaxed(v any) ([]byte, error) {
	if v == nil {
		panic("v is nil")
	}

	switch v := v.(type) {
	case *types.Document:
		var buf bytes.Buffer
		buf.WriteByte('{')

		for i := 0; i < v.Len(); i++ {
			if i != 0 {
				buf.WriteByte(',')
			}

			name, el := v.Entry(i)

			buf.Write(must.NotFail(json.Marshal(name)))
			buf.WriteByte(':')

			b, err := MarshalRelaxed(el)
			if err != nil {
				return nil, lazyerrors.Error(err)
			}

			buf.Write(b)
		}

		buf.WriteByte('}')

		return buf.Bytes(), nil

	case *types.Array:
		var buf bytes.Buffer
		buf.WriteByte('[')

		for i := 0; i < v.Len(); i++ {
			if i != 0 {
				buf.WriteByte(',')
			}

			b, err := MarshalRelaxed(v.Get(i))
			if err != nil {
				return nil, lazyerrors.Error(err)
			}

			buf.Write(b)
		}

		buf.WriteByte(']')

		return buf.Bytes(), nil

	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			break
		}

		res, err := json.Marshal(v)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		return res, nil

	case int32:
		return []byte(strconv.FormatInt(int64(v), 10)), nil

	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil

	case types.Long:
		return []byte(v.String()), nil

	case time.Time:
		t := v.UTC()
		if y := t.Year(); y < 1970 || y > 9999 {
			break
		}

		var j struct {
			D string `json:"$date"`
		}
		j.D = t.Format(relaxedDateFormat)

		res, err := json.Marshal(j)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		return res, nil
	}

	res, err := Marshal(v)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}
