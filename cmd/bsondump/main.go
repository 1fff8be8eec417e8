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

// bsondump reads a stream of BSON documents and prints them
// in a readable form.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/lucsoft/bsonkit/internal/bson"
	"github.com/lucsoft/bsonkit/internal/types/fjson"
	"github.com/lucsoft/bsonkit/internal/util/hex"
)

// cli describes the command-line interface.
//
//nolint:vet // for readability
var cli struct {
	Format string `default:"json" enum:"json,relaxed,hex" help:"Output format: json, relaxed, or hex."`
	Debug  bool   `help:"Enable debug logging."`

	File string `arg:"" default:"-" help:"File to read, or - for stdin."`
}

func main() {
	kong.Parse(&cli)

	cfg := zap.NewProductionConfig()
	if cli.Debug {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // nothing to do with that error

	if err = run(os.Stdout, logger); err != nil {
		logger.Fatal("Dump failed.", zap.Error(err))
	}
}

// run dumps all documents from the input file to w.
func run(w io.Writer, logger *zap.Logger) error {
	var b []byte
	var err error

	if cli.File == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(cli.File)
	}
	if err != nil {
		return err
	}

	logger.Debug("Input read.", zap.Int("bytes", len(b)))

	var n int
	for len(b) > 0 {
		raw := bson.FindRawDocument(b)
		if raw == nil {
			return fmt.Errorf("offset %d: no valid document found", n)
		}

		if err = dump(w, raw); err != nil {
			return err
		}

		b = b[len(raw):]
		n += len(raw)
	}

	return nil
}

// dump prints a single document in the requested format.
func dump(w io.Writer, raw bson.RawDocument) error {
	if cli.Format == "hex" {
		_, err := fmt.Fprintln(w, hex.Dump(raw))
		return err
	}

	doc, err := bson.Deserialize(raw, nil)
	if err != nil {
		return err
	}

	var j []byte
	if cli.Format == "relaxed" {
		j, err = fjson.MarshalRelaxed(doc)
	} else {
		j, err = fjson.Marshal(doc)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(j))

	return err
}
