// Command geobench times the planar geometry algorithms of
// github.com/katalvlaran/geobench/geometry and writes the results.
//
// Usage:
//
//	geobench geometry --points 100000 --runs 3 --verify
//	geobench geometry -p 5000 --dataset clustered --geojson scene.geojson
//	geobench all --small --jobs 4 --json results.json --csv results.csv
//
// Exit status is 1 on any error, including an interrupt.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "geobench:", err)
		stop()
		os.Exit(1)
	}
}
