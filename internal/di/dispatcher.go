package di

import (
	"github.com/defval/di"
	"github.com/mono83/slf"

	"github.com/ffbanner/ffbanner/internal/assets"
	"github.com/ffbanner/ffbanner/internal/banner"
	d "github.com/ffbanner/ffbanner/internal/dispatcher"
	"github.com/ffbanner/ffbanner/internal/eventsubscribers"
	"github.com/ffbanner/ffbanner/internal/http"
	"github.com/ffbanner/ffbanner/internal/profiles"
)

var dispatcherDiOptions = di.Options(
	di.Provide(newDispatcher,
		di.As(new(d.Emitter)),
		di.As(new(d.Subscriber)),
		di.As(new(http.Emitter)),
		di.As(new(assets.Emitter)),
		di.As(new(profiles.Emitter)),
		di.As(new(banner.Emitter)),
		di.As(new(eventsubscribers.Subscriber)),
	),
	di.Invoke(enableEventsHandlers),
)

func newDispatcher() d.Dispatcher {
	return d.New()
}

func enableEventsHandlers(
	dispatcher d.Subscriber,
	logger slf.Logger,
	statsReporter slf.StatsReporter,
) {
	(&eventsubscribers.Logger{Logger: logger}).ConfigureWithDispatcher(dispatcher)
	(&eventsubscribers.StatsReporter{StatsReporter: statsReporter}).ConfigureWithDispatcher(dispatcher)
}
