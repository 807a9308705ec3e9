// Package main provides the notemark CLI, which renders note block files to
// HTML, plain text or Markdown.
package main

import (
	"fmt"
	"os"
)

var version = "0.1.0" // This could be set at build time

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
