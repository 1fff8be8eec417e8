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
	"regexp"
	"sort"
	"strings"

	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// Regex represents BSON type Regex.
//
// Options are single-character flags; on the wire they are stored
// alphabetically (`i`, `l`, `m`, `s`, `u`, `x`).
type Regex struct {
	Pattern string
	Options string
}

// SortedOptions returns the options in the wire order.
func (r Regex) SortedOptions() string {
	if len(r.Options) < 2 {
		return r.Options
	}

	o := []byte(r.Options)
	sort.Slice(o, func(i, j int) bool { return o[i] < o[j] })
	return string(o)
}

// Compile translates the Regex into a *regexp.Regexp.
//
// Only the `i`, `m`, and `s` flags have Go equivalents;
// any other flag makes the translation fail.
func (r Regex) Compile() (*regexp.Regexp, error) {
	var flags string

	for _, o := range r.Options {
		switch o {
		case 'i', 'm', 's':
			flags += string(o)
		default:
			return nil, lazyerrors.Errorf("types.Regex.Compile: unsupported flag %q", o)
		}
	}

	expr := r.Pattern
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}

	res, err := regexp.Compile(expr)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// RegexFromGo converts a compiled Go regexp into a Regex with empty options.
func RegexFromGo(r *regexp.Regexp) Regex {
	pattern := r.String()

	// keep a leading inline-flags group as BSON options when it maps cleanly
	if strings.HasPrefix(pattern, "(?") {
		if i := strings.IndexByte(pattern, ')'); i > 2 {
			flags := pattern[2:i]
			if !strings.ContainsAny(flags, ":-U") {
				return Regex{Pattern: pattern[i+1:], Options: flags}
			}
		}
	}

	return Regex{Pattern: pattern}
}
