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

// boolType represents BSON Boolean type.
type boolType bool

// fjsontype implements fjsontype interface.
func (b *boolType) fjsontype() {}

// MarshalJSON implements fjsontype interface.
func (b *boolType) MarshalJSON() ([]byte, error) {
	if *b {
		return []byte("true"), nil
	}

	return []byte("false"), nil
}

// check interfaces
var (
	_ fjsontype = (*boolType)(nil)
)
