package di

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/defval/di"
)

var contextDiOptions = di.Options(
	di.Provide(newBaseContext),
)

// SIGKILL can't be caught, so only SIGINT and SIGTERM trigger the graceful shutdown
func newBaseContext() (context.Context, func(), error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return ctx, stop, nil
}
