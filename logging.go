package playink

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

// ConfigureLogging installs the global logger. When configPath is set it is
// read as a zeroconfig YAML file; otherwise logs go to stderr at level,
// pretty-printed on a terminal.
func ConfigureLogging(level, configPath string) (zerolog.Logger, error) {
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("playink: read log config: %w", err)
		}
		var cfg zeroconfig.Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return zerolog.Logger{}, fmt.Errorf("playink: log config %s is not valid yaml: %w", configPath, err)
		}
		logger, err := cfg.Compile()
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("playink: log config %s: %w", configPath, err)
		}
		log.Logger = *logger
		return *logger, nil
	}

	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("playink: log level: %w", err)
		}
		lvl = parsed
	}
	var w io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
	return logger, nil
}
