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

// minKeyType represents BSON MinKey type.
type minKeyType types.MinKeyType

// fjsontype implements fjsontype interface.
func (mk *minKeyType) fjsontype() {}

// MarshalJSON implements fjsontype interface.
func (mk *minKeyType) MarshalJSON() ([]byte, error) {
	return []byte(`{"$minKey":1}`), nil
}

// maxKeyType represents BSON MaxKey type.
type maxKeyType types.MaxKeyType

// fjsontype implements fjsontype interface.
func (mk *maxKeyType) fjsontype() {}

// MarshalJSON implements fjsontype interface.
func (mk *maxKeyType) MarshalJSON() ([]byte, error) {
	return []byte(`{"$maxKey":1}`), nil
}

// check interfaces
var (
	_ fjsontype = (*minKeyType)(nil)
	_ fjsontype = (*maxKeyType)(nil)
)
