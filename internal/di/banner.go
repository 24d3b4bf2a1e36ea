package di

import (
	"os"
	"path/filepath"

	"github.com/defval/di"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
	"github.com/spf13/viper"

	"github.com/ffbanner/ffbanner/internal/banner"
	. "github.com/ffbanner/ffbanner/internal/http"
)

var bannerDiOptions = di.Options(
	di.Provide(newTypeface),
	di.Provide(newCompositor, di.As(new(banner.Composer))),
	di.Provide(newBannerPool, di.As(new(BannerRenderer))),
)

func newTypeface(config *viper.Viper, logger slf.Logger) *banner.Typeface {
	config.SetDefault("banner.font_file", "NotoSans-Bold.ttf")

	path := resolveFontPath(config.GetString("banner.font_file"))
	typeface, err := banner.LoadTypeface(path)
	if typeface.IsFallback() {
		logger.Warning("Unable to load the :path font, the built-in one will be used: :err",
			wd.StringParam("path", path),
			wd.ErrParam(err),
		)
	} else {
		logger.Debug("Loaded the :path font", wd.StringParam("path", path))
	}

	return typeface
}

func newCompositor(typeface *banner.Typeface) (*banner.Compositor, error) {
	return banner.NewCompositor(typeface)
}

func newBannerPool(config *viper.Viper, composer banner.Composer, emitter banner.Emitter) (*banner.Pool, func(), error) {
	config.SetDefault("banner.workers", banner.DefaultWorkers)

	pool := banner.NewPool(composer, config.GetInt("banner.workers"), emitter)

	return pool, pool.Close, nil
}

// resolveFontPath looks for a relative font file in the working directory first
// and then next to the executable
func resolveFontPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	if _, err := os.Stat(path); err == nil {
		return path
	}

	executable, err := os.Executable()
	if err != nil {
		return path
	}

	return filepath.Join(filepath.Dir(executable), path)
}
