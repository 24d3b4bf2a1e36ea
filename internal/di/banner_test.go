package di

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
)

func TestNewTypeface(t *testing.T) {
	logger := wd.Custom("", "", &slf.Dispatcher{})

	t.Run("missing font file", func(t *testing.T) {
		config := viper.New()
		config.Set("banner.font_file", filepath.Join(t.TempDir(), "missing.ttf"))

		typeface := newTypeface(config, logger)
		require.NotNil(t, typeface)
		require.True(t, typeface.IsFallback())
	})

	t.Run("valid font file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bold.ttf")
		require.NoError(t, os.WriteFile(path, gobold.TTF, 0o644))

		config := viper.New()
		config.Set("banner.font_file", path)

		typeface := newTypeface(config, logger)
		require.False(t, typeface.IsFallback())
	})
}
