// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package configuration

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. HANOI_SOLVER_DISCS.
const EnvPrefix = "hanoi"

// Configuration contains configuration params for all components
type Configuration struct {
	Log     Log
	Solver  Solver
	Metrics Metrics
}

// NewConfiguration creates new default configuration
func NewConfiguration() Configuration {
	return Configuration{
		Log:     NewLog(),
		Solver:  NewSolver(),
		Metrics: NewMetrics(),
	}
}

// Holder provides methods to manage configuration
type Holder struct {
	Configuration *Configuration
	Viper         *viper.Viper
	path          string
}

// NewHolder creates new Holder with default configuration. An empty path means defaults and environment only.
func NewHolder(path string) *Holder {
	cfg := NewConfiguration()
	return &Holder{Configuration: &cfg, Viper: viper.New(), path: path}
}

// Load reads defaults, then the configuration file (if any), then environment overrides and flags bound to Viper.
func (h *Holder) Load() error {
	defaults, err := yaml.Marshal(NewConfiguration())
	if err != nil {
		return errors.Wrap(err, "failed to marshal default configuration")
	}

	h.Viper.SetConfigType("yaml")
	if err := h.Viper.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return errors.Wrap(err, "failed to read default configuration")
	}

	if h.path != "" {
		h.Viper.SetConfigFile(h.path)
		if err := h.Viper.MergeInConfig(); err != nil {
			return errors.Wrapf(err, "failed to load configuration from file %s", h.path)
		}
	}

	h.Viper.SetEnvPrefix(EnvPrefix)
	h.Viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	h.Viper.AutomaticEnv()

	cfg := Configuration{}
	if err := h.Viper.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "failed to unmarshal configuration")
	}
	*h.Configuration = cfg
	return nil
}

// ToString converts any configuration struct to yaml string
func ToString(in interface{}) string {
	out, err := yaml.Marshal(in)
	if err != nil {
		return "failed to marshal config structure: " + err.Error()
	}
	return string(out)
}
