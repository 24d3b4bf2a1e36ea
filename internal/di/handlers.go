package di

import (
	"net/http"

	"github.com/defval/di"
	"github.com/etherlabsio/healthcheck/v2"
	"github.com/gorilla/mux"

	. "github.com/ffbanner/ffbanner/internal/http"
)

var handlersDiOptions = di.Options(
	di.Provide(newHandlerFactory, di.As(new(http.Handler))),
	di.Provide(newBannerHandler, di.WithName("banner")),
)

func newHandlerFactory(
	container *di.Container,
	emitter Emitter,
) (*mux.Router, error) {
	var router *mux.Router
	if err := container.Resolve(&router, di.Name("banner")); err != nil {
		return nil, err
	}

	router.StrictSlash(true)
	requestEventsMiddleware := CreateRequestEventsMiddleware(emitter, "banner")
	router.Use(requestEventsMiddleware)
	// NotFoundHandler doesn't call for registered middlewares, so we must wrap it manually.
	// See https://github.com/gorilla/mux/issues/416#issuecomment-600079279
	router.NotFoundHandler = requestEventsMiddleware(http.HandlerFunc(NotFoundHandler))

	// Resolve health checkers last, because all the services required by the application
	// must first be initialized and each of them can publish its own checkers
	var healthCheckers []*namedHealthChecker
	if has, _ := container.Has(&healthCheckers); has {
		if err := container.Resolve(&healthCheckers); err != nil {
			return nil, err
		}

		checkersOptions := make([]healthcheck.Option, len(healthCheckers))
		for i, checker := range healthCheckers {
			checkersOptions[i] = healthcheck.WithChecker(checker.Name, checker.Checker)
		}

		router.Handle("/healthcheck", healthcheck.Handler(checkersOptions...)).Methods(http.MethodGet)
	}

	return router, nil
}

func newBannerHandler(profilesProvider ProfilesProvider, bannerRenderer BannerRenderer) *mux.Router {
	return (&Banner{
		ProfilesProvider: profilesProvider,
		BannerRenderer:   bannerRenderer,
	}).Handler()
}

type namedHealthChecker struct {
	Name    string
	Checker healthcheck.Checker
}
