/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/combahton/cbcli/pkg/utils"
)

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	out := ctx.Writer()

	if ctx.JsonOutput {
		info := map[string]string{
			"app":     utils.ProjectName,
			"version": utils.ProjectVersion,
			"go":      runtime.Version(),
		}

		outBytes, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(out, string(outBytes))
	} else {
		fmt.Fprintln(out, utils.ProjectName)
		fmt.Fprintf(out, "Version %s\n", utils.ProjectVersion)
	}

	return nil
}
