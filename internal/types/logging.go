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

package types

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

// logFlowLimit is the maximum length of a flow/inline representation of a value.
const logFlowLimit = 80

// logDepthLimit is the maximum nesting rendered in logs.
const logDepthLimit = 20

// slogValue returns a compact representation of any BSON value as [slog.Value].
// It may change over time.
//
// Some information is lost: for example, int32 and int64 values look the same,
// and arrays are rendered as documents.
func slogValue(v any, depth int) slog.Value {
	switch v := v.(type) {
	case *Document:
		if depth > logDepthLimit {
			return slog.StringValue("Document<...>")
		}

		var attrs []slog.Attr
		for _, f := range v.fields {
			attrs = append(attrs, slog.Attr{Key: f.name, Value: slogValue(f.value, depth+1)})
		}

		return slog.GroupValue(attrs...)

	case *Array:
		if depth > logDepthLimit {
			return slog.StringValue("Array<...>")
		}

		var attrs []slog.Attr
		for i, e := range v.elements {
			attrs = append(attrs, slog.Attr{Key: strconv.Itoa(i), Value: slogValue(e, depth+1)})
		}

		return slog.GroupValue(attrs...)

	case float64:
		// for JSON handler to work
		switch {
		case math.IsNaN(v):
			return slog.StringValue("NaN")
		case math.IsInf(v, 1):
			return slog.StringValue("+Inf")
		case math.IsInf(v, -1):
			return slog.StringValue("-Inf")
		}

		return slog.Float64Value(v)

	case string:
		return slog.StringValue(v)

	case bool:
		return slog.BoolValue(v)

	case time.Time:
		return slog.TimeValue(v.Truncate(time.Millisecond).UTC())

	case NullType:
		return slog.Value{}

	case ObjectID:
		return slog.StringValue(v.String())

	case int32:
		return slog.Int64Value(int64(v))

	case int64:
		return slog.Int64Value(v)

	case Long:
		return slog.StringValue(v.String())

	case Decimal128:
		return slog.StringValue(v.String())

	case Timestamp:
		return slog.StringValue("Timestamp(" + v.String() + ")")

	default:
		return slog.StringValue(fmt.Sprintf("%#v", v))
	}
}

// logMessage returns an indented representation of any BSON value as a string,
// somewhat similar (but not identical) to JSON or Go syntax.
// It may change over time.
func logMessage(v any, indent string, depth int) string {
	switch v := v.(type) {
	case *Document:
		l := len(v.fields)
		if l == 0 {
			return "{}"
		}

		if depth > logDepthLimit {
			return "{...}"
		}

		res := "{"
		for i, f := range v.fields {
			res += strconv.Quote(f.name) + `: ` + logMessage(f.value, "", depth+1)
			if i != l-1 {
				res += ", "
			}
		}
		res += "}"

		if len(res) < logFlowLimit {
			return res
		}

		res = "{\n"
		for _, f := range v.fields {
			res += indent + "  " + strconv.Quote(f.name) + `: `
			res += logMessage(f.value, indent+"  ", depth+1) + ",\n"
		}

		return res + indent + "}"

	case *Array:
		l := len(v.elements)
		if l == 0 {
			return "[]"
		}

		if depth > logDepthLimit {
			return "[...]"
		}

		res := "["
		for i, e := range v.elements {
			res += logMessage(e, "", depth+1)
			if i != l-1 {
				res += ", "
			}
		}
		res += "]"

		if len(res) < logFlowLimit {
			return res
		}

		res = "[\n"
		for _, e := range v.elements {
			res += indent + "  " + logMessage(e, indent+"  ", depth+1) + ",\n"
		}

		return res + indent + "]"

	case float64:
		switch {
		case math.IsNaN(v):
			return "NaN"
		case math.IsInf(v, 1):
			return "+Inf"
		case math.IsInf(v, -1):
			return "-Inf"
		}

		res := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsAny(res, ".e") {
			res += ".0"
		}
		return res

	case string:
		return strconv.Quote(v)

	case bool:
		return strconv.FormatBool(v)

	case time.Time:
		return v.Truncate(time.Millisecond).UTC().Format(time.RFC3339Nano)

	case NullType:
		return "null"

	case UndefinedType:
		return "undefined"

	case MinKeyType:
		return "MinKey"

	case MaxKeyType:
		return "MaxKey"

	case ObjectID:
		return v.String()

	case int32:
		return strconv.FormatInt(int64(v), 10)

	case int64:
		return strconv.FormatInt(v, 10) + "L"

	case Long:
		return v.String() + "L"

	case Decimal128:
		return v.String() + "m"

	case Timestamp:
		return "Timestamp(" + v.String() + ")"

	default:
		return fmt.Sprintf("%#v", v)
	}
}
