package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// ANALYZER_FIXTURE points the scenario at an external transcript
	// instead of the built-in one
	FixturePath string `envconfig:"ANALYZER_FIXTURE"`
	// ANALYZER_DEBUG_JSON allows dumping the full report as indented JSON
	DebugJSON       bool `envconfig:"ANALYZER_DEBUG_JSON" default:"false"`
	MaxPayloadBytes int  `envconfig:"ANALYZER_MAX_PAYLOAD_BYTES" default:"16777216"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
