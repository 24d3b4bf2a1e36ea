package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
)

type Emitter interface {
	Emit(name string, args ...interface{})
}

func StartServer(ctx context.Context, server *http.Server, logger slf.Logger) {
	srvErr := make(chan error, 1)
	go func() {
		logger.Info("Starting the server on :addr", wd.StringParam("addr", server.Addr))
		srvErr <- server.ListenAndServe()
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Emergency("Error in the server: :err", wd.ErrParam(err))
		}
	case <-ctx.Done():
		logger.Info("Got stop signal, starting graceful shutdown")

		stopCtx, cancelFunc := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancelFunc()

		_ = server.Shutdown(stopCtx)

		logger.Info("Graceful shutdown succeed, exiting")
	}
}

// CreateRequestEventsMiddleware emits "<prefix>:before_request" and "<prefix>:after_request" events
// around each request. The latter receives the status code sent to the client.
func CreateRequestEventsMiddleware(emitter Emitter, prefix string) mux.MiddlewareFunc {
	beforeTopic := prefix + ":before_request"
	afterTopic := prefix + ":after_request"

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			emitter.Emit(beforeTopic, req)

			lrw := &loggingResponseWriter{
				ResponseWriter: resp,
				Status:         http.StatusOK,
			}
			handler.ServeHTTP(lrw, req)

			emitter.Emit(afterTopic, req, lrw.Status)
		})
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	Status      int
	wroteHeader bool
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if !lrw.wroteHeader {
		lrw.Status = code
		lrw.wroteHeader = true
	}

	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(data []byte) (int, error) {
	lrw.wroteHeader = true

	return lrw.ResponseWriter.Write(data)
}

func NotFoundHandler(response http.ResponseWriter, _ *http.Request) {
	writeJson(response, http.StatusNotFound, map[string]string{
		"status":  "404",
		"message": "Not Found",
	})
}

func apiDetail(resp http.ResponseWriter, status int, detail string) {
	writeJson(resp, status, map[string]string{
		"detail": detail,
	})
}

func writeJson(resp http.ResponseWriter, status int, payload any) {
	result, _ := json.Marshal(payload)

	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(status)
	_, _ = resp.Write(result)
}
