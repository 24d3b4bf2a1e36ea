package di

import (
	"strings"

	"github.com/defval/di"
	"github.com/spf13/viper"
)

var configDiOptions = di.Options(
	di.Provide(newConfig),
)

// newConfig reads everything from the environment: "server.port" becomes SERVER_PORT
func newConfig() *viper.Viper {
	config := viper.GetViper()
	config.AutomaticEnv()
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return config
}
