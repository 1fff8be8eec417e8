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
	"github.com/lucsoft/bsonkit/internal/types"
)

// nullType represents BSON Null type.
type nullType types.NullType

// fjsontype implements fjsontype interface.
func (n *nullType) fjsontype() {}

// MarshalJSON implements fjsontype interface.
func (n *nullType) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// undefinedType represents the deprecated BSON Undefined type.
type undefinedType types.UndefinedType

// fjsontype implements fjsontype interface.
func (u *undefinedType) fjsontype() {}

// MarshalJSON implements fjsontype interface.
func (u *undefinedType) MarshalJSON() ([]byte, error) {
	return []byte(`{"$undefined":true}`), nil
}

// check interfaces
var (
	_ fjsontype = (*nullType)(nil)
	_ fjsontype = (*undefinedType)(nil)
)
