// relaxviz generates small random directed graphs with negative edges and
// animates Bellman-Ford on them, in the terminal or over HTTP.
//
// Usage:
//
//	relaxviz generate [--seed N] [--json]
//	relaxviz order    [--seed N] [--source X]
//	relaxviz run      [--seed N] [--source X] [--delay 1.5s] [--tables]
//	relaxviz verify   [--count N] [--parallel P] [--start-seed S]
//	relaxviz serve    [--addr :8080]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
