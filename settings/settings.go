package settings

import (
	"github.com/dotree-sh/dotree/common"
	"github.com/dotree-sh/dotree/engine"
	"github.com/spf13/viper"
)

// Application level settings, all bound to DT_ prefixed environment
// variables: DT_DEFAULT_SHELL, DT_CONFIG, DT_ON_INVALID_KEY.

var store *viper.Viper

func init() {
	store = viper.New()
	store.SetEnvPrefix("DT")
	store.AutomaticEnv()
	store.BindEnv("default_shell", common.DefaultShellVariable)
	store.BindEnv("config", common.ConfigVariable)
	store.SetDefault("on_invalid_key", engine.OnInvalidReset)
}

// DefaultShell is the DT_DEFAULT_SHELL override, an empty string when
// unset; it ranks below the configuration's own shell directives.
func DefaultShell() string {
	return store.GetString("default_shell")
}

// ConfigOverride is the DT_CONFIG configuration path override.
func ConfigOverride() string {
	return store.GetString("config")
}

// OnInvalidKey is the interactive unknown-key policy, always one of
// the engine's policy constants. Anything other than "exit" falls
// back to the default "reset".
func OnInvalidKey() string {
	value := store.GetString("on_invalid_key")
	if value != engine.OnInvalidExit {
		if value != engine.OnInvalidReset {
			common.Log("Unknown DT_ON_INVALID_KEY value %q, using %q.", value, engine.OnInvalidReset)
		}
		return engine.OnInvalidReset
	}
	return value
}
