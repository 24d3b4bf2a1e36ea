package eventsubscribers

import (
	"context"
	"sync"
	"time"

	"github.com/etherlabsio/healthcheck/v2"
)

// InfoApiChecker fails while the most recent account info request has failed.
// The failure is forgotten after the resetDuration if no other requests were made.
func InfoApiChecker(dispatcher Subscriber, resetDuration time.Duration) healthcheck.CheckerFunc {
	errHolder := &expiringErrHolder{D: resetDuration}
	dispatcher.Subscribe("profiles:account_info", func(uid string, err error) {
		errHolder.Set(err)
	})

	return func(ctx context.Context) error {
		return errHolder.Get()
	}
}

type expiringErrHolder struct {
	D   time.Duration
	err error
	l   sync.Mutex
	t   *time.Timer
}

func (h *expiringErrHolder) Get() error {
	h.l.Lock()
	defer h.l.Unlock()

	return h.err
}

func (h *expiringErrHolder) Set(err error) {
	h.l.Lock()
	defer h.l.Unlock()
	if h.t != nil {
		h.t.Stop()
		h.t = nil
	}

	h.err = err
	if err != nil {
		h.t = time.AfterFunc(h.D, func() {
			h.Set(nil)
		})
	}
}
