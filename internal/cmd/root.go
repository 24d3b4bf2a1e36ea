package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ffbanner/ffbanner/internal/di"
	"github.com/ffbanner/ffbanner/internal/http"
	"github.com/ffbanner/ffbanner/internal/version"
)

var RootCmd = &cobra.Command{
	Use:     "ffbanner",
	Short:   "Renders Free Fire player profiles into shareable banner images",
	Version: version.Version(),
}

func startServer() error {
	container, err := di.New()
	if err != nil {
		return err
	}

	// Releases the compose pool and idle outgoing connections once the server is stopped
	defer container.Cleanup()

	return container.Invoke(http.StartServer)
}
