/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/combahton/cbcli/internal/config"
	"github.com/combahton/cbcli/pkg/utils"
)

// ConfigCmd groups the commands that inspect and edit the local configuration.
type ConfigCmd struct {
	Set   ConfigSetCmd   `cmd:"" help:"Set a configuration value"`
	Get   ConfigGetCmd   `cmd:"" help:"Show every value of a namespace"`
	List  ConfigListCmd  `cmd:"" help:"List the stored namespaces"`
	Clear ConfigClearCmd `cmd:"" help:"Remove the stored credentials"`
}

// ConfigSetCmd writes namespace.key = value.
type ConfigSetCmd struct {
	Index string `arg:"" help:"Configuration key as <namespace>.<key>, e.g. user.email"`
	Value string `arg:"" help:"Value to store"`
}

func (cmd *ConfigSetCmd) Run(ctx *Context) error {
	namespace, key, err := utils.SplitConfigKey(cmd.Index)
	if err != nil {
		return err
	}

	if ctx.Store == nil {
		return utils.FailedReadingConfiguration
	}

	return ctx.Store.Set(namespace, key, cmd.Value)
}

// ConfigGetCmd prints every key of a namespace as "namespace.key: value".
type ConfigGetCmd struct {
	Namespace string `arg:"" help:"Namespace to show, e.g. user"`
}

func (cmd *ConfigGetCmd) Run(ctx *Context) error {
	if ctx.Store == nil {
		return utils.FailedReadingConfiguration
	}

	values, ok := ctx.Store.Namespace(cmd.Namespace)
	if !ok {
		return utils.NamespaceNotFound
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(ctx.Writer(), "%s.%s: %s\n", cmd.Namespace, k, values[k])
	}

	return nil
}

// ConfigListCmd prints the namespace names, one per line.
type ConfigListCmd struct{}

func (cmd *ConfigListCmd) Run(ctx *Context) error {
	if ctx.Store == nil {
		return utils.FailedReadingConfiguration
	}

	for _, ns := range ctx.Store.Namespaces() {
		fmt.Fprintln(ctx.Writer(), ns)
	}

	return nil
}

// ConfigClearCmd drops the credentials, or the whole file with --all.
type ConfigClearCmd struct {
	All bool `help:"Remove every namespace, not only the credentials"`
}

func (cmd *ConfigClearCmd) Run(ctx *Context) error {
	if ctx.Store == nil {
		return utils.FailedReadingConfiguration
	}

	wipe := ctx.Store.ClearCredentials
	if cmd.All {
		wipe = ctx.Store.ClearAll
	}

	err := wipe()
	if errors.Is(err, config.ErrNothingToClear) {
		fmt.Fprintln(ctx.Writer(), "There were no credentials stored.")

		return nil
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.Writer(), "Stored credentials removed.")

	return nil
}
