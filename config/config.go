package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config wraps a viper instance holding all bitgrid settings. Precedence
// is the usual viper order: explicit Set, command-line args, environment
// variables with the BITGRID_ prefix, then defaults.
type Config struct {
	v *viper.Viper
}

// Load initializes defaults and environment binding, then applies any
// --key value or --key=value overrides from args. A --key with no value
// before the next flag is treated as a boolean true.
func (c *Config) Load(args []string) error {
	c.v = viper.New()
	c.v.SetEnvPrefix("bitgrid")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetDefault("debug", false)
	c.v.SetDefault("history-file", "/tmp/bitgrid_readline.tmp")
	c.v.SetDefault("cpu-profile", "")
	c.v.SetDefault("mem-profile", "")

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return fmt.Errorf("unexpected argument %v", arg)
		}
		arg = strings.TrimPrefix(arg, "--")
		if key, val, found := strings.Cut(arg, "="); found {
			c.v.Set(key, val)
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			c.v.Set(arg, args[i+1])
			i++
		} else {
			c.v.Set(arg, true)
		}
	}
	return nil
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// AllSettings returns every setting, for diagnostic display.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
