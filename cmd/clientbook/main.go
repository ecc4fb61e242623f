package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/clientbook/clientbook/internal/cli"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// execute is swapped in tests to avoid touching a real database
var execute = cli.Execute

func run(ctx context.Context, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	osExit(run(context.Background(), os.Stderr))
}
