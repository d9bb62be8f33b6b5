package factory

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/configloader"
	"github.com/go-playground/validator/v10"

	"github.com/effective-security/mcptools/transport"
)

// Config lists the tool provider servers available to the factory,
// in the common mcpServers layout:
//
//	mcpServers:
//	  weather:
//	    command: uvx
//	    args: [weather-server]
//	    env:
//	      API_KEY: ${WEATHER_API_KEY}
type Config struct {
	MCPServers map[string]transport.Server `json:"mcpServers" yaml:"mcpServers" validate:"required,min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that at least one server is configured and that every
// server has a command.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		return errors.WithMessage(err, "invalid MCP servers configuration")
	}
	return nil
}

// LoadConfig reads the configuration from a JSON or YAML file,
// expanding environment variables in the values.
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
