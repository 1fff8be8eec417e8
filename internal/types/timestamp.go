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
	"math"
	"strconv"
	"time"
)

// Timestamp represents BSON type Timestamp:
// 32 bits of Unix seconds in the high half, a 32-bit ordinal in the low half.
//
// The combined value is always unsigned;
// comparison and rendering operate on the unsigned 64-bit value.
type Timestamp uint64

// MaxTimestamp is the largest representable Timestamp, 2^64-1.
const MaxTimestamp = Timestamp(math.MaxUint64)

// NewTimestamp returns a Timestamp from seconds and an ordinal.
func NewTimestamp(sec, ordinal uint32) Timestamp {
	return Timestamp(uint64(sec)<<32 | uint64(ordinal))
}

// NewTimestampFromInt returns a Timestamp from possibly out-of-range
// seconds and ordinal values.
//
// Negative and overflowing inputs wrap through the unsigned 32-bit space;
// they are never rejected.
// NewTimestampFromInt(-1, -1) is MaxTimestamp.
func NewTimestampFromInt(sec, ordinal int64) Timestamp {
	return NewTimestamp(uint32(sec), uint32(ordinal))
}

// NextTimestamp returns a Timestamp from time and an ordinal.
func NextTimestamp(t time.Time, ordinal uint32) Timestamp {
	return NewTimestamp(uint32(t.Unix()), ordinal)
}

// Time returns the seconds part as time.Time, ignoring the ordinal.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t>>32), 0).UTC()
}

// Ordinal returns the ordinal part.
func (t Timestamp) Ordinal() uint32 {
	return uint32(t)
}

// String renders the combined value as an unsigned decimal.
func (t Timestamp) String() string {
	return strconv.FormatUint(uint64(t), 10)
}
