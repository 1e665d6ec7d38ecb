// Package main is the entry point for the unraid-mqtt-stats agent. One
// invocation performs one cycle: build the sensor catalog, apply user
// overrides, then publish over MQTT, print JSON lines, or dump the
// resolved sensor metadata to a TOML file.
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

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
