package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/xmlschemas/internal/cli"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(schemas.ExitPanic)
		}
	}()

	if os.Getenv("XMLSCHEMAS_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(schemas.ExitCodeForError(err))
	}
}
