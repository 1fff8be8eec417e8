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
	"log/slog"
	"strconv"
)

// RawDocument represents a BSON document in the binary encoded form.
//
// Raw subtrees appear as document values when the decoder is asked
// to leave certain fields unparsed.
type RawDocument []byte

// RawArray represents a BSON array in the binary encoded form.
type RawArray []byte

// LogValue implements slog.LogValuer interface.
func (raw RawDocument) LogValue() slog.Value {
	return slog.StringValue("RawDocument<" + strconv.Itoa(len(raw)) + ">")
}

// LogValue implements slog.LogValuer interface.
func (raw RawArray) LogValue() slog.Value {
	return slog.StringValue("RawArray<" + strconv.Itoa(len(raw)) + ">")
}
