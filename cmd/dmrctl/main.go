package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ykkai-w/DMR-ML-Pro/cmd/dmrctl/deps"
)

func main() {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	os.Exit(deps.Run(ctx))
}
