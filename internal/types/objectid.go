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
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"sync/atomic"
	"time"

	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
	"github.com/lucsoft/bsonkit/internal/util/must"
)

var (
	// ErrInvalidObjectIDFormat indicates that a hex string is not a valid ObjectID.
	ErrInvalidObjectIDFormat = lazyerrors.New("ObjectID must be a single string of 24 hex characters")

	// ErrInvalidObjectIDLength indicates that a byte slice is not 12 bytes long.
	ErrInvalidObjectIDLength = lazyerrors.New("ObjectID must be exactly 12 bytes long")
)

// ObjectID represents BSON type ObjectID:
// 4 bytes of big-endian Unix seconds, 5 bytes of a per-process random value,
// and a big-endian 3-byte counter.
type ObjectID [12]byte

// objectIDProcess is a random value generated once per process.
var objectIDProcess = must.NotFail(readRandom(5))

// objectIDCounter is incremented on every generation and wraps at 2^24.
// It starts at a random value.
var objectIDCounter = mustRandomUint32()

func readRandom(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return b, nil
}

func mustRandomUint32() *atomic.Uint32 {
	b := must.NotFail(readRandom(4))

	var res atomic.Uint32
	res.Store(binary.BigEndian.Uint32(b))
	return &res
}

// NewObjectID generates a new ObjectID using the current time.
func NewObjectID() ObjectID {
	return NewObjectIDFromTime(time.Now())
}

// NewObjectIDFromTime generates a new ObjectID with the given timestamp.
//
// The counter increment is atomic; concurrent generation never produces
// duplicate IDs within a process.
func NewObjectIDFromTime(t time.Time) ObjectID {
	var id ObjectID

	binary.BigEndian.PutUint32(id[0:4], uint32(t.Unix()))
	copy(id[4:9], objectIDProcess)

	c := objectIDCounter.Add(1) % (1 << 24)
	id[9] = byte(c >> 16)
	id[10] = byte(c >> 8)
	id[11] = byte(c)

	return id
}

// NewObjectIDFromHex creates an ObjectID from its 24-character hex representation.
func NewObjectIDFromHex(s string) (ObjectID, error) {
	var id ObjectID

	if len(s) != 24 {
		return id, lazyerrors.Error(ErrInvalidObjectIDFormat)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return id, lazyerrors.Error(ErrInvalidObjectIDFormat)
	}

	copy(id[:], b)

	return id, nil
}

// NewObjectIDFromBytes creates an ObjectID from a 12-byte slice.
func NewObjectIDFromBytes(b []byte) (ObjectID, error) {
	var id ObjectID

	if len(b) != 12 {
		return id, lazyerrors.Error(ErrInvalidObjectIDLength)
	}

	copy(id[:], b)

	return id, nil
}

// Hex returns the 24-character hex representation.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

// Time returns the generation time with second precision.
func (id ObjectID) Time() time.Time {
	sec := binary.BigEndian.Uint32(id[0:4])
	return time.Unix(int64(sec), 0).UTC()
}

// Counter returns the 3-byte counter part.
func (id ObjectID) Counter() uint32 {
	return uint32(id[9])<<16 | uint32(id[10])<<8 | uint32(id[11])
}

// Less reports whether id orders before other.
// Byte-wise ordering is also chronological for IDs generated at different seconds.
func (id ObjectID) Less(other ObjectID) bool {
	return bytes.Compare(id[:], other[:]) < 0
}

// String implements fmt.Stringer.
func (id ObjectID) String() string {
	return "ObjectID(" + id.Hex() + ")"
}
