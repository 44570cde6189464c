// Command xbpar is a thin demonstration harness around the par package:
// it loads a netlist and device graph described in the gdl text format,
// runs placement and routing, and reports the outcome. The par package
// itself has no file-I/O or CLI dependency; this command exists to give
// it a realistic host, the way the teacher corpus pairs a bare library
// with a cmd/ wrapper.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/greenpak-par/xbpar/par"
	"github.com/greenpak-par/xbpar/par/gdl"
)

var log = par.NewLevelSplitLogger(os.Stdout, os.Stderr)

func main() {
	cfg := defaultConfig()
	var configPath, envPath string

	root := &cobra.Command{
		Use:   "xbpar",
		Short: "Place and route a netlist graph onto a device graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadTOMLConfig(&cfg, configPath); err != nil {
				return err
			}
			if err := loadEnvOverrides(&cfg, envPath); err != nil {
				return err
			}
			applyFlagOverrides(cmd, &cfg)
			return run(cfg)
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&cfg.NetlistPath, "netlist", "", "path to the netlist graph description")
	root.Flags().StringVar(&cfg.DevicePath, "device", "", "path to the device graph description")
	root.Flags().Uint32Var(&cfg.Seed, "seed", cfg.Seed, "annealing PRNG seed")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log progress to stdout")
	root.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.Flags().StringVar(&envPath, "env", "", "path to a .env file to load environment overrides from")

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("xbpar: fatal")
		os.Exit(1)
	}
}

// applyFlagOverrides re-applies any flag the caller actually set on top
// of the TOML/env layers resolved in RunE, so flags win regardless of
// the order cobra populated cfg's bound fields in.
func applyFlagOverrides(cmd *cobra.Command, cfg *runConfig) {
	flags := cmd.Flags()
	if flags.Changed("netlist") {
		cfg.NetlistPath, _ = flags.GetString("netlist")
	}
	if flags.Changed("device") {
		cfg.DevicePath, _ = flags.GetString("device")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint32("seed")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
}

func run(cfg runConfig) (runErr error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*par.InvariantError); ok {
				log.Error(ie.Error())
				runErr = ie
				return
			}
			panic(r)
		}
	}()

	if cfg.NetlistPath == "" || cfg.DevicePath == "" {
		return errMissingPaths
	}

	netlistSrc, err := os.ReadFile(cfg.NetlistPath)
	if err != nil {
		return err
	}
	deviceSrc, err := os.ReadFile(cfg.DevicePath)
	if err != nil {
		return err
	}

	netlist, err := gdl.Parse(string(netlistSrc))
	if err != nil {
		return err
	}
	device, err := gdl.Parse(string(deviceSrc))
	if err != nil {
		return err
	}

	e := par.NewEngine(netlist, device)
	e.Logger = log
	if !cfg.Verbose {
		e.Logger.SetLevel(logrus.ErrorLevel)
	}

	if !e.PlaceAndRoute(cfg.Verbose, cfg.Seed) {
		return errPlacementFailed
	}
	log.Info("placement and routing succeeded")
	return nil
}
