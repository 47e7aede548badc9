// Package main provides the CLI entrypoint for metadata-mapper.
//
// metadata-mapper applies a declarative YAML field mapping to a JSON webhook
// payload:
//   - Loads and validates the mapping file
//   - Resolves each field's dot-notation path against the payload
//   - Coerces and filters extracted values per field configuration
//   - Prints the accumulated entity object as JSON
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"

	"metadata-mapper/internal/mapping"
	"metadata-mapper/jsonnode"
	"metadata-mapper/metadata"
)

func main() {
	os.Exit(run())
}

func run() int {
	mappingPath := flag.String("mapping", "", "path to the YAML mapping file")
	payloadPath := flag.String("payload", "", "path to the JSON payload")
	debug := flag.Bool("debug", false, "dump compiled field descriptors to stderr")
	watch := flag.Bool("watch", false, "re-apply the mapping whenever the mapping file changes")
	flag.Parse()

	if *mappingPath == "" || *payloadPath == "" {
		fmt.Fprintln(os.Stderr, "usage: metadata-mapper -mapping mapping.yaml -payload payload.json [-debug] [-watch]")
		return 1
	}

	data, err := os.ReadFile(*payloadPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	root, err := jsonnode.Parse(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err := mapping.Watch(ctx, *mappingPath, func(mf *mapping.MappingFile) {
			apply(mf, root, *debug)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		return 0
	}

	mf, err := mapping.LoadFile(*mappingPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return apply(mf, root, *debug)
}

// apply validates and compiles the mapping, extracts against the payload,
// and prints the resulting entity. Diagnostics go to stderr.
func apply(mf *mapping.MappingFile, root jsonnode.Node, debug bool) int {
	res := mapping.Validate(mf)

	for _, d := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning: "+d.String())
	}

	if res.HasErrors() {
		for _, d := range res.Errors {
			fmt.Fprintln(os.Stderr, "error: "+d.String())
		}

		return 2
	}

	fields, err := mapping.Compile(mf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if debug {
		spew.Fdump(os.Stderr, fields)
	}

	sink := mf.NewEntity()
	if err := metadata.ProcessAll(fields, root, sink); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	out, err := json.Marshal(sink)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	fmt.Println(string(out))

	return 0
}
