package eventsubscribers

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"

	"github.com/ffbanner/ffbanner/internal/assets"
	"github.com/ffbanner/ffbanner/internal/freefire"
)

type Logger struct {
	slf.Logger
}

func (l *Logger) ConfigureWithDispatcher(d Subscriber) {
	d.Subscribe("banner:after_request", l.handleAfterRequest)
	d.Subscribe("profiles:account_info", l.handleAccountInfo)
	d.Subscribe("profiles:asset", l.handleAsset)
	d.Subscribe("assets:attempt", l.handleAssetAttempt)
	d.Subscribe("banner:after_render", l.handleAfterRender)
}

func (l *Logger) handleAfterRequest(req *http.Request, statusCode int) {
	path := req.URL.Path
	if req.URL.RawQuery != "" {
		path += "?" + req.URL.RawQuery
	}

	l.Info(
		":ip - - \":method :path\" :statusCode - \":userAgent\" \":forwardedIp\"",
		wd.StringParam("ip", trimPort(req.RemoteAddr)),
		wd.StringParam("method", req.Method),
		wd.StringParam("path", path),
		wd.IntParam("statusCode", statusCode),
		wd.StringParam("userAgent", req.UserAgent()),
		wd.StringParam("forwardedIp", req.Header.Get("X-Forwarded-For")),
	)
}

func (l *Logger) handleAccountInfo(uid string, err error) {
	if err == nil {
		return
	}

	var upstreamErr *freefire.UpstreamError
	if errors.As(err, &upstreamErr) {
		l.Warning(":uid: Info API request failed: :err", wd.StringParam("uid", uid), wd.ErrParam(err))
		return
	}

	l.Error(":uid: Unexpected error while retrieving the account info: :err", wd.StringParam("uid", uid), wd.ErrParam(err))
}

func (l *Logger) handleAsset(kind string, assetId string, found bool, err error) {
	if err != nil {
		l.Warning(":name: Unable to fetch the :assetId asset: :err",
			wd.NameParam(kind),
			wd.StringParam("assetId", assetId),
			wd.ErrParam(err),
		)
		return
	}

	if !found && assets.IsPresent(assetId) {
		l.Debug(":name: The :assetId asset wasn't found in any repository", wd.NameParam(kind), wd.StringParam("assetId", assetId))
	}
}

func (l *Logger) handleAssetAttempt(url string, outcome assets.Outcome, err error) {
	if outcome == assets.MissAbandonRepository {
		l.Warning("Repository is unreachable, skipping its remaining batches. Failed on :url: :err",
			wd.StringParam("url", url),
			wd.ErrParam(err),
		)
		return
	}

	if err != nil {
		l.Debug("Asset request to :url failed: :err", wd.StringParam("url", url), wd.ErrParam(err))
	}
}

func (l *Logger) handleAfterRender(elapsed time.Duration, err error) {
	if err == nil {
		return
	}

	l.Warning("Unable to compose the banner, the fallback image was sent instead: :err", wd.ErrParam(err))
}

func trimPort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
