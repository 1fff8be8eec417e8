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
	"github.com/google/uuid"

	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// BinarySubtype represents BSON Binary's subtype.
type BinarySubtype byte

const (
	// BinaryGeneric represents a generic binary subtype.
	BinaryGeneric = BinarySubtype(0x00)

	// BinaryFunction represents a function.
	BinaryFunction = BinarySubtype(0x01)

	// BinaryGenericOld represents a generic-old subtype.
	BinaryGenericOld = BinarySubtype(0x02)

	// BinaryUUIDOld represents an old UUID subtype.
	BinaryUUIDOld = BinarySubtype(0x03)

	// BinaryUUID represents a UUID subtype.
	BinaryUUID = BinarySubtype(0x04)

	// BinaryMD5 represents an MD5 subtype.
	BinaryMD5 = BinarySubtype(0x05)

	// BinaryEncrypted represents an encrypted subtype.
	BinaryEncrypted = BinarySubtype(0x06)

	// BinaryUser is the first user-defined subtype.
	BinaryUser = BinarySubtype(0x80)
)

// String implements fmt.Stringer.
func (s BinarySubtype) String() string {
	switch s {
	case BinaryGeneric:
		return "generic"
	case BinaryFunction:
		return "function"
	case BinaryGenericOld:
		return "generic-old"
	case BinaryUUIDOld:
		return "uuid-old"
	case BinaryUUID:
		return "uuid"
	case BinaryMD5:
		return "md5"
	case BinaryEncrypted:
		return "encrypted"
	default:
		if s >= BinaryUser {
			return "user"
		}
		return "unknown"
	}
}

// Binary represents BSON type Binary: a subtype byte plus raw bytes.
type Binary struct {
	B       []byte
	Subtype BinarySubtype
}

// BinaryFromUUID returns a Binary with the UUID subtype.
func BinaryFromUUID(u uuid.UUID) Binary {
	b := make([]byte, 16)
	copy(b, u[:])

	return Binary{
		B:       b,
		Subtype: BinaryUUID,
	}
}

// UUID interprets the Binary as a UUID.
//
// It returns an error if the subtype or length does not match.
func (b Binary) UUID() (uuid.UUID, error) {
	if b.Subtype != BinaryUUID {
		return uuid.UUID{}, lazyerrors.Errorf("types.Binary.UUID: unexpected subtype %s", b.Subtype)
	}

	res, err := uuid.FromBytes(b.B)
	if err != nil {
		return uuid.UUID{}, lazyerrors.Error(err)
	}

	return res, nil
}
