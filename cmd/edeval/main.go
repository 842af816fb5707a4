// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/entitylink/edeval/internal/cli"
	"github.com/entitylink/edeval/internal/logging"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version); err != nil {
		logging.Get().Error().Err(err).Msg("edeval failed")
		stop()
		os.Exit(1)
	}
}
