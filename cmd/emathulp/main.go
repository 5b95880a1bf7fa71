// Command emathulp measures and tunes the accuracy of the go-emath kernels.
//
// Usage:
//
//	emathulp backends
//	emathulp sweep --funcs sin,exp --precision 64 --samples 20000
//	emathulp search --func exp --precision 64 --iterations 10000
//
// Every subcommand honours HWY_NO_SIMD and HWY_MAX_LEVEL, which decide the
// backend the library selects at start-up.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "emathulp:", err)
		os.Exit(1)
	}
}
