package main

import "github.com/pkg/errors"

var (
	errMissingPaths    = errors.New("xbpar: --netlist and --device are both required (flag, env, or config file)")
	errPlacementFailed = errors.New("xbpar: placement and routing did not converge")
)
