package main

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	Square   int
	Scale    float64
	LogLevel log.Level
}

// LoadConfig reads QUORIDOR_SQUARE, QUORIDOR_SCALE and QUORIDOR_LOG_LEVEL,
// falling back to defaults for anything unset or unreadable.
func LoadConfig() Config {
	cfg := Config{
		Square:   67,
		Scale:    1,
		LogLevel: log.InfoLevel,
	}

	if s := os.Getenv("QUORIDOR_LOG_LEVEL"); s != "" {
		level, err := log.ParseLevel(s)
		if err != nil {
			log.Warnf("QUORIDOR_LOG_LEVEL %q: %v", s, err)
		} else {
			cfg.LogLevel = level
		}
	}

	if s := os.Getenv("QUORIDOR_SQUARE"); s == "" {
		log.Printf("Defaulting square to %dpx", cfg.Square)
	} else if n, err := strconv.Atoi(s); err != nil || n < 16 {
		log.Warnf("QUORIDOR_SQUARE %q ignored, using %d", s, cfg.Square)
	} else {
		cfg.Square = n
	}

	if s := os.Getenv("QUORIDOR_SCALE"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f <= 0 {
			log.Warnf("QUORIDOR_SCALE %q ignored, using %v", s, cfg.Scale)
		} else {
			cfg.Scale = f
		}
	}
	return cfg
}
