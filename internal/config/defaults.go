package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the values used when neither the file, the environment nor a
// flag provides one. They match a local regtest node.
func setDefaults(v *viper.Viper) {
	v.SetDefault("rpc.url", "http://127.0.0.1:18443")
	v.SetDefault("rpc.user", "")
	v.SetDefault("rpc.password", "")
	v.SetDefault("rpc.cookie_file", "")
	v.SetDefault("rpc.wallet", "")
	v.SetDefault("rpc.timeout", 30*time.Second)

	v.SetDefault("network", "regtest")
	v.SetDefault("server_version", 19)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}
