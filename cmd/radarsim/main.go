// Command radarsim runs the pulsed-radar simulation from the command line and
// prints a YAML report.
//
//	radarsim run --targets 1700,3930,6027 --pulses 64
//	radarsim run --config scenario.yaml --log-level debug
//	radarsim info --config scenario.yaml
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

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
