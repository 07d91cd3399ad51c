/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"fmt"
	"strings"

	"github.com/combahton/cbcli/internal/config"
	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// LoginCmd stores the account email and API key used to sign every request.
type LoginCmd struct {
	Email   string `arg:"" help:"Account email address"`
	Key     string `arg:"" optional:"" help:"API key, prompted for when omitted"`
	Keyring bool   `help:"Keep the API key in the OS keychain instead of the config file"`
}

func (cmd *LoginCmd) Run(ctx *Context) error {
	if !strings.Contains(cmd.Email, "@") {
		return utils.InvalidUserInput.WithDetails("a valid email address is required")
	}

	if ctx.Store == nil {
		return utils.FailedReadingConfiguration
	}

	if cmd.Key == "" {
		fmt.Fprint(ctx.Writer(), "API key: ")

		key, err := utils.PR.ReadPassword()
		fmt.Fprintln(ctx.Writer())

		if err != nil {
			return utils.InvalidUserInput.WithDetails(err.Error())
		}

		cmd.Key = strings.TrimSpace(key)
	}

	if cmd.Keyring || ctx.Keyring {
		ctx.Store.UseSecretStore(config.NewKeyringSecrets())
	}

	if err := ctx.Store.SaveCredentials(cmd.Email, cmd.Key); err != nil {
		return err
	}

	log.Debugf("credentials written to %s", ctx.Store.Path())
	fmt.Fprintf(ctx.Writer(), "Saved credentials for %s\n", strings.TrimSpace(cmd.Email))

	return nil
}
