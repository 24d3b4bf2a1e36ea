package di

import (
	"fmt"
	"net/http"
	"time"

	"github.com/defval/di"
	"github.com/getsentry/raven-go"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
	"github.com/rs/cors"
	"github.com/spf13/viper"
)

var serverDiOptions = di.Options(
	di.Provide(newServer),
)

type serverParams struct {
	di.Inject

	Config  *viper.Viper  `di:""`
	Handler http.Handler  `di:""`
	Logger  slf.Logger    `di:""`
	Sentry  *raven.Client `di:"" optional:"true"`
}

func newServer(params serverParams) *http.Server {
	params.Config.SetDefault("server.host", "0.0.0.0")
	params.Config.SetDefault("server.port", 5000)

	// mux middlewares aren't called for unmatched preflight requests, so CORS wraps the whole router
	handler := cors.AllowAll().Handler(params.Handler)
	if params.Sentry != nil {
		// raven.Recoverer uses DefaultClient and nothing can be done about it
		// To avoid code duplication, if the Sentry service is successfully initiated,
		// it will also replace DefaultClient, so raven.Recoverer will work with the instance
		// created in the application constructor
		handler = raven.Recoverer(handler)
	} else {
		// If you don't define a panic handler, the server will just reset the connection
		handler = recoverer(handler, params.Logger)
	}

	address := fmt.Sprintf("%s:%d", params.Config.GetString("server.host"), params.Config.GetInt("server.port"))
	server := &http.Server{
		Addr:        address,
		ReadTimeout: 5 * time.Second,
		// There is no WriteTimeout: a banner may legitimately take longer than any reasonable limit
		// when the assets repositories respond slowly
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
		Handler:        handler,
	}

	return server
}

func recoverer(handler http.Handler, logger slf.Logger) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("Recovered from panic while serving :path: :panic",
					wd.StringParam("path", request.URL.Path),
					wd.StringParam("panic", fmt.Sprint(recovered)),
				)
				response.WriteHeader(http.StatusInternalServerError)
			}
		}()

		handler.ServeHTTP(response, request)
	})
}
