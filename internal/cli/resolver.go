/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"time"

	"github.com/alecthomas/kong"
	"github.com/combahton/cbcli/internal/config"
	log "github.com/sirupsen/logrus"
)

// ConfigResolver maps the core namespace of the configuration file onto the
// global flags. Values given on the command line take precedence.
func ConfigResolver(store *config.Store) kong.Resolver {
	return kong.ResolverFunc(func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		switch flag.Name {
		case "log-level":
			if v := store.Verbosity(); v != "" {
				return v, nil
			}

		case "endpoint":
			if v, ok := store.Get(config.NamespaceCore, config.KeyEndpoint); ok && v != "" {
				return v, nil
			}

		case "timeout":
			if v, ok := store.Get(config.NamespaceCore, config.KeyTimeout); ok && v != "" {
				// skipped when unparsable, otherwise no command could run to repair it
				if _, err := time.ParseDuration(v); err != nil {
					log.Warnf("ignoring invalid %s.%s %q: %v", config.NamespaceCore, config.KeyTimeout, v, err)

					return nil, nil
				}

				return v, nil
			}
		}

		return nil, nil
	})
}
