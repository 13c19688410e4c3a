package server

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/iov-one/cowallet/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Config is the daemon configuration, read from a TOML file.
type Config struct {
	// Bind is the address the ABCI server listens on.
	Bind string `toml:"bind"`
	// Home is the directory holding the application database.
	Home string `toml:"home"`
	// LogLevel is one of debug, info, error or none.
	LogLevel string `toml:"log_level"`
	// Debug returns full error messages to clients.
	Debug bool `toml:"debug"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig(home string) Config {
	return Config{
		Bind:     "tcp://localhost:26658",
		Home:     home,
		LogLevel: "info",
	}
}

// LoadConfig reads the configuration file. Values missing from the file keep
// the value of the given defaults. A missing file is not an error.
func LoadConfig(path string, defaults Config) (Config, error) {
	conf := defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return conf, errors.Wrapf(errors.ErrInvalidInput, "config %q: %s", path, err)
	}
	return conf, nil
}

// WriteConfig stores the configuration in the TOML format.
func WriteConfig(w io.Writer, conf Config) error {
	if err := toml.NewEncoder(w).Encode(conf); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return nil
}

// NewLogger returns a logger writing to w, filtered by the configured level.
func NewLogger(w io.Writer, conf Config) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	level, err := log.AllowLevel(conf.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return log.NewFilter(logger, level), nil
}
