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

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucsoft/bsonkit/internal/util/hex"
)

// Dump returns a hex dump of the given bytes.
func Dump(tb testing.TB, b []byte) string {
	tb.Helper()

	return hex.Dump(b)
}

// ParseDump parses a hex dump into bytes.
func ParseDump(tb testing.TB, s string) []byte {
	tb.Helper()

	b, err := hex.ParseDump(s)
	require.NoError(tb, err)

	return b
}

// ParseDumpFile parses a hex dump file into bytes.
func ParseDumpFile(tb testing.TB, path ...string) []byte {
	tb.Helper()

	b, err := os.ReadFile(filepath.Join(path...))
	require.NoError(tb, err)

	return ParseDump(tb, string(b))
}

// MustParseDumpFile panics if the file cannot be parsed.
// It is for use outside of tests, in fuzzing corpus generators.
func MustParseDumpFile(path ...string) []byte {
	b, err := os.ReadFile(filepath.Join(path...))
	if err != nil {
		panic(err)
	}

	res, err := hex.ParseDump(string(b))
	if err != nil {
		panic(err)
	}

	return res
}
