// Command lvbayes runs conjugate updates, Gibbs samplers and HPD interval
// calculations from a TOML or YAML run configuration.
//
//	lvbayes conjugate --config run.toml
//	lvbayes gibbs --config run.yaml --chain-out draws.csv
//	lvbayes hpd --family gamma --params 16,6 --prob 0.95
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
