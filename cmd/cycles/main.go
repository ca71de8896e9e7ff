package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/cycles/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	code := cli.Execute(ctx, version, os.Args[1:])
	signal.Stop(c)
	cancel()
	os.Exit(code)
}
