package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/thedevsaddam/govalidator"

	"github.com/ffbanner/ffbanner/internal/banner"
	"github.com/ffbanner/ffbanner/internal/freefire"
	"github.com/ffbanner/ffbanner/internal/profiles"
)

const (
	cacheControl = "public, max-age=300"

	detailUidRequired = "UID required"
	detailUpstream    = "Info API Error"
)

type ProfilesProvider interface {
	FindProfile(ctx context.Context, uid string) (*profiles.Profile, error)
}

type BannerRenderer interface {
	Render(ctx context.Context, data *banner.Data) ([]byte, error)
}

type Banner struct {
	ProfilesProvider
	BannerRenderer
}

func (b *Banner) Handler() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/profile", b.profileHandler).Methods(http.MethodGet)

	return router
}

func (b *Banner) profileHandler(resp http.ResponseWriter, req *http.Request) {
	validationErrors := govalidator.New(govalidator.Options{
		Request: req,
		Rules: govalidator.MapData{
			"uid": []string{"required"},
		},
		RequiredDefault: true,
	}).Validate()
	uid := req.URL.Query().Get("uid")
	if len(validationErrors) > 0 || uid == "" {
		apiDetail(resp, http.StatusBadRequest, detailUidRequired)
		return
	}

	profile, err := b.FindProfile(req.Context(), uid)
	if err != nil {
		var upstreamErr *freefire.UpstreamError
		if errors.As(err, &upstreamErr) {
			apiDetail(resp, http.StatusBadGateway, detailUpstream)
			return
		}

		apiDetail(resp, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := b.Render(req.Context(), bannerData(profile))
	if err != nil {
		apiDetail(resp, http.StatusInternalServerError, err.Error())
		return
	}

	resp.Header().Set("Content-Type", "image/png")
	resp.Header().Set("Cache-Control", cacheControl)
	resp.Header().Set("Content-Length", strconv.Itoa(len(result)))
	resp.WriteHeader(http.StatusOK)
	_, _ = resp.Write(result)
}

func bannerData(profile *profiles.Profile) *banner.Data {
	data := &banner.Data{
		Avatar: profile.Avatar,
		Banner: profile.Banner,
		Pin:    profile.Pin,
	}

	if account := profile.Account; account != nil {
		data.Name = account.Name
		data.Guild = account.GuildName
		if account.Level != nil {
			data.Level = strconv.Itoa(*account.Level)
		}
	}

	return data
}
