// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/biogo/metatools/lca"
)

// config holds the run parameters after merging the configuration file
// and command line flags.
type config struct {
	Names    string
	Nodes    string
	MinScore int
	Fraction float64
	Workers  int
	Validate bool
}

// loadConfig reads the configuration file at path, if it is not empty,
// and overlays any flags set on the command line. A taxdump directory
// given by flag or by the taxonomy.dir key provides default names.dmp
// and nodes.dmp paths.
//
// An example YAML configuration:
//
//	taxonomy:
//	  dir: /data/taxdump
//	lca:
//	  min_score: 100
//	  fraction: 0.98
//	  workers: 8
func loadConfig(path string) (config, error) {
	v := viper.New()
	v.SetDefault("taxonomy.dir", "")
	v.SetDefault("taxonomy.names", "")
	v.SetDefault("taxonomy.nodes", "")
	v.SetDefault("taxonomy.validate", false)
	v.SetDefault("lca.min_score", lca.DefaultMinScore)
	v.SetDefault("lca.fraction", lca.DefaultFraction)
	v.SetDefault("lca.workers", 0)

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return config{}, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "taxdump":
			v.Set("taxonomy.dir", *taxdump)
		case "names":
			v.Set("taxonomy.names", *names)
		case "nodes":
			v.Set("taxonomy.nodes", *nodes)
		case "validate":
			v.Set("taxonomy.validate", *validate)
		case "min":
			v.Set("lca.min_score", *minScore)
		case "fraction":
			v.Set("lca.fraction", *fraction)
		case "workers":
			v.Set("lca.workers", *workers)
		}
	})

	cfg := config{
		Names:    v.GetString("taxonomy.names"),
		Nodes:    v.GetString("taxonomy.nodes"),
		MinScore: v.GetInt("lca.min_score"),
		Fraction: v.GetFloat64("lca.fraction"),
		Workers:  v.GetInt("lca.workers"),
		Validate: v.GetBool("taxonomy.validate"),
	}
	if dir := v.GetString("taxonomy.dir"); dir != "" {
		if cfg.Names == "" {
			cfg.Names = filepath.Join(dir, "names.dmp")
		}
		if cfg.Nodes == "" {
			cfg.Nodes = filepath.Join(dir, "nodes.dmp")
		}
	}
	return cfg, nil
}
