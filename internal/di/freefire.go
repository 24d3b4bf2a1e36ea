package di

import (
	"net/http"
	"time"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"github.com/ffbanner/ffbanner/internal/assets"
	"github.com/ffbanner/ffbanner/internal/eventsubscribers"
	"github.com/ffbanner/ffbanner/internal/freefire"
	. "github.com/ffbanner/ffbanner/internal/http"
	"github.com/ffbanner/ffbanner/internal/profiles"
)

var freefireDiOptions = di.Options(
	di.Provide(newFreefireApi, di.As(new(profiles.AccountInfoProvider))),
	di.Provide(newAssetsProvider, di.As(new(profiles.AssetsProvider))),
	di.Provide(newProfilesProvider, di.As(new(ProfilesProvider))),
	di.Provide(newInfoApiHealthChecker),
)

func newFreefireApi(config *viper.Viper, httpClient *http.Client) *freefire.Api {
	config.SetDefault("freefire.info_url", freefire.DefaultInfoUrl)
	config.SetDefault("freefire.region", freefire.DefaultRegion)

	return freefire.NewApi(
		httpClient,
		config.GetString("freefire.info_url"),
		config.GetString("freefire.region"),
	)
}

func newAssetsProvider(config *viper.Viper, httpClient *http.Client, emitter assets.Emitter) *assets.Provider {
	config.SetDefault("assets.host_template", assets.DefaultHostTemplate)

	return assets.NewProvider(httpClient, emitter, config.GetString("assets.host_template"))
}

func newProfilesProvider(
	accountInfoProvider profiles.AccountInfoProvider,
	assetsProvider profiles.AssetsProvider,
	emitter profiles.Emitter,
) *profiles.Provider {
	return profiles.NewProvider(accountInfoProvider, assetsProvider, emitter)
}

func newInfoApiHealthChecker(subscriber eventsubscribers.Subscriber) *namedHealthChecker {
	return &namedHealthChecker{
		Name:    "info-api",
		Checker: eventsubscribers.InfoApiChecker(subscriber, 10*time.Second),
	}
}
