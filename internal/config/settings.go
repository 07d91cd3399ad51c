/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/combahton/cbcli/pkg/utils"
	"github.com/ilyakaznacheev/cleanenv"
)

// Settings are the process-level defaults taken from the environment.
// Command line flags override every one of them.
type Settings struct {
	ConfigPath string        `env:"CBCLI_CONFIG" env-description:"Path to the configuration file"`
	Endpoint   string        `env:"CBCLI_ENDPOINT" env-default:"https://api.combahton.net/v2" env-description:"API endpoint"`
	Timeout    time.Duration `env:"CBCLI_TIMEOUT" env-default:"30s" env-description:"Request timeout"`
	Keyring    bool          `env:"CBCLI_KEYRING" env-default:"false" env-description:"Store the API key in the OS keychain"`
}

// LoadSettings reads Settings from the environment and fills in the default config path.
func LoadSettings() (Settings, error) {
	var s Settings

	if err := cleanenv.ReadEnv(&s); err != nil {
		return s, utils.FailedReadingConfiguration.WithDetails(err.Error())
	}

	if s.ConfigPath == "" {
		s.ConfigPath = DefaultPath()
	}

	return s, nil
}

// DefaultPath is config.yaml inside the user configuration directory,
// falling back to the working directory when none is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "config.yaml"
	}

	return filepath.Join(dir, utils.ProjectName, "config.yaml")
}
