// Package config holds runtime settings, loaded from defaults and
// HINDSIGHT_* environment variables.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Extend widens the candidate-target universe from the answers list to
	// the full corpus union.
	Extend bool
	// Debug enables debug-level logging.
	Debug bool
	// Verbose adds per-round candidate statistics to reports.
	Verbose bool
	// AnswersFile and AcceptedFile override the embedded word lists.
	AnswersFile  string
	AcceptedFile string
}

func (c *Config) Load() error {
	v := viper.New()
	v.SetDefault("extend", false)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("answers-file", "")
	v.SetDefault("accepted-file", "")
	v.SetEnvPrefix("hindsight")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c.Extend = v.GetBool("extend")
	c.Debug = v.GetBool("debug")
	c.Verbose = v.GetBool("verbose")
	c.AnswersFile = v.GetString("answers-file")
	c.AcceptedFile = v.GetString("accepted-file")
	return nil
}
