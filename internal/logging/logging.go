package logging

import (
	"io"

	log "github.com/sirupsen/logrus"

	"phonebook-service/internal/config"
)

// Init configures the global logrus logger from cfg.
func Init(cfg config.LoggerConfig, out io.Writer) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if out != nil {
		log.SetOutput(out)
	}
}
