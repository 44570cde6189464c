package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// runConfig holds a fully resolved run configuration: device/netlist file
// paths, the annealing seed, and whether to log verbosely. Fields are
// filled in by layering, lowest precedence first: built-in defaults, a
// TOML config file, environment variables (optionally loaded from a
// .env file), then command-line flags.
type runConfig struct {
	NetlistPath string `toml:"netlist"`
	DevicePath  string `toml:"device"`
	Seed        uint32 `toml:"seed"`
	Verbose     bool   `toml:"verbose"`
}

func defaultConfig() runConfig {
	return runConfig{Seed: 1}
}

// loadTOMLConfig merges a TOML config file into cfg, if the file exists.
// A missing file is not an error: the TOML layer is optional.
func loadTOMLConfig(cfg *runConfig, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "loading config file %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "loading config file %s", path)
	}
	return nil
}

// loadEnvOverrides loads envPath (if given and present) into the process
// environment via godotenv, then overlays XBPAR_NETLIST, XBPAR_DEVICE and
// XBPAR_VERBOSE, where it (or the ambient environment) defines them, onto
// cfg. The seed has no environment override.
func loadEnvOverrides(cfg *runConfig, envPath string) error {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "loading env file %s", envPath)
		}
	}
	if v := os.Getenv("XBPAR_NETLIST"); v != "" {
		cfg.NetlistPath = v
	}
	if v := os.Getenv("XBPAR_DEVICE"); v != "" {
		cfg.DevicePath = v
	}
	if v := os.Getenv("XBPAR_VERBOSE"); v != "" {
		cfg.Verbose = v != "0" && v != "false"
	}
	return nil
}
