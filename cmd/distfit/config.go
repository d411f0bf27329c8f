package main

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/probviz/probdist/fit"
)

// config is the environment configuration of distfit. Command-line
// flags default to it.
type config struct {
	fit      fit.Config
	seed     uint64
	logLevel string
}

// loadConfig reads the configuration from the environment after
// loading an optional .env file from the working directory.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config{}, errors.Wrap(err, "loading .env")
	}

	def := fit.DefaultConfig()
	cfg := config{logLevel: getEnvOrDefault("LOG_LEVEL", "warn")}
	var err error
	if cfg.fit.Bins, err = getEnvInt("DISTFIT_BINS", def.Bins); err != nil {
		return config{}, err
	}
	if cfg.fit.MaxDelta, err = getEnvFloat("DISTFIT_MAX_DELTA", def.MaxDelta); err != nil {
		return config{}, err
	}
	if cfg.fit.KSCutoff, err = getEnvFloat("DISTFIT_KS_CUTOFF", def.KSCutoff); err != nil {
		return config{}, err
	}
	if cfg.fit.Parallelism, err = getEnvInt("DISTFIT_PARALLELISM", def.Parallelism); err != nil {
		return config{}, err
	}
	if cfg.seed, err = getEnvUint("DISTFIT_SEED", 1); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", key)
	}
	return i, nil
}

func getEnvUint(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", key)
	}
	return u, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", key)
	}
	return f, nil
}
