// Package main provides the entry point banner for ps2intrin, a Go
// model of the Emotion Engine integer-pipeline intrinsics and their
// register-shadowing protocol.
//
// For the demonstration CLI, use: go run ./cmd/eeintrin
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("ps2intrin - Emotion Engine integer-pipeline intrinsics model")
	fmt.Println("")
	fmt.Println("Usage: eeintrin [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to timing configuration JSON file")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/eeintrin' for the demonstration CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/eeintrin' instead.")
	}
}
