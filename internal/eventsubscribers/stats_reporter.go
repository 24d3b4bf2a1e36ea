package eventsubscribers

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mono83/slf"

	"github.com/ffbanner/ffbanner/internal/assets"
)

type StatsReporter struct {
	slf.StatsReporter

	timersMap   map[string]time.Time
	timersMutex sync.Mutex
}

func (s *StatsReporter) ConfigureWithDispatcher(d Subscriber) {
	s.timersMap = make(map[string]time.Time)

	// Per request events
	d.Subscribe("banner:before_request", s.handleBeforeRequest)
	d.Subscribe("banner:after_request", s.handleAfterRequest)

	// Info API
	d.Subscribe("profiles:account_info", func(uid string, err error) {
		if err != nil {
			s.IncCounter("info_api.failed", 1)
		} else {
			s.IncCounter("info_api.success", 1)
		}
	})

	// Assets
	d.Subscribe("profiles:asset", func(kind string, assetId string, found bool, err error) {
		if !assets.IsPresent(assetId) {
			return
		}

		if found {
			s.IncCounter("assets."+kind+".hit", 1)
		} else {
			s.IncCounter("assets."+kind+".miss", 1)
		}
	})
	d.Subscribe("assets:attempt", func(url string, outcome assets.Outcome, err error) {
		s.IncCounter("assets.attempt", 1)
		if outcome == assets.MissAbandonRepository {
			s.IncCounter("assets.repository_unreachable", 1)
		}
	})

	// Composition
	d.Subscribe("banner:after_render", func(elapsed time.Duration, err error) {
		s.RecordTimer("banner.render_time", elapsed)
		if err != nil {
			s.IncCounter("banner.fallback", 1)
		}
	})
}

func (s *StatsReporter) handleBeforeRequest(req *http.Request) {
	if req.URL.Path != "/profile" {
		return
	}

	s.IncCounter("profile.request", 1)
	s.startTimeRecording(requestTimerKey(req))
}

func (s *StatsReporter) handleAfterRequest(req *http.Request, code int) {
	if req.URL.Path != "/profile" {
		return
	}

	s.finalizeTimeRecording(requestTimerKey(req), "profile.request_time")

	var key string
	switch code {
	case http.StatusOK:
		key = "profile.success"
	case http.StatusBadRequest:
		key = "profile.validation_failed"
	case http.StatusBadGateway:
		key = "profile.upstream_error"
	case http.StatusInternalServerError:
		key = "profile.error"
	default:
		return
	}

	s.IncCounter(key, 1)
}

func (s *StatsReporter) startTimeRecording(timeKey string) {
	s.timersMutex.Lock()
	defer s.timersMutex.Unlock()
	s.timersMap[timeKey] = time.Now()
}

func (s *StatsReporter) finalizeTimeRecording(timeKey string, statName string) {
	s.timersMutex.Lock()
	defer s.timersMutex.Unlock()
	startedAt, ok := s.timersMap[timeKey]
	if !ok {
		return
	}

	delete(s.timersMap, timeKey)

	s.RecordTimer(statName, time.Since(startedAt))
}

func requestTimerKey(req *http.Request) string {
	return fmt.Sprintf("request_%p", req)
}
