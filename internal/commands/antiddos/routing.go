/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package antiddos

import (
	"fmt"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/commands"
	"github.com/combahton/cbcli/internal/presenter"
	"github.com/combahton/cbcli/pkg/utils"
)

const (
	routingL4Target = "l4_target"
	targetFV3       = "fv3"
	targetNone      = "none"
)

type Layer4Cmd struct {
	Routing Layer4RoutingCmd `cmd:"" help:"Set the layer 4 routing mode: dynamic, permanent or dynamic_perm"`
	FV3     FV3Cmd           `cmd:"" name:"fv3" help:"Enable or disable flowShield v3 filtering"`
}

type Layer7Cmd struct {
	Routing Layer7RoutingCmd `cmd:"" help:"Set the layer 7 routing mode: only_on, only_off, activate or deactivate"`
}

type Layer4RoutingCmd struct {
	commands.APIBaseCmd
	TargetArg
	Mode string `arg:"" enum:"dynamic,permanent,dynamic_perm" help:"Routing mode (dynamic, permanent, dynamic_perm)"`
}

func (cmd *Layer4RoutingCmd) Run(ctx *commands.Context) error {
	if err := cmd.Canonicalize(); err != nil {
		return err
	}

	return routing(ctx, &cmd.APIBaseCmd, methodLayer4, cmd.IP, api.Params{paramRouting: cmd.Mode})
}

type Layer7RoutingCmd struct {
	commands.APIBaseCmd
	TargetArg
	Mode string `arg:"" enum:"only_on,only_off,activate,deactivate" help:"Routing mode (only_on, only_off, activate, deactivate)"`
}

func (cmd *Layer7RoutingCmd) Run(ctx *commands.Context) error {
	if err := cmd.Canonicalize(); err != nil {
		return err
	}

	return routing(ctx, &cmd.APIBaseCmd, methodLayer7, cmd.IP, api.Params{paramRouting: cmd.Mode})
}

// FV3Cmd switches the layer 4 target filter between flowShield v3 and none.
type FV3Cmd struct {
	commands.APIBaseCmd
	TargetArg
	Toggle string `arg:"" help:"on/off (true/false)"`
}

func (cmd *FV3Cmd) Run(ctx *commands.Context) error {
	if err := cmd.Canonicalize(); err != nil {
		return err
	}

	enabled, err := utils.ParseToggle(cmd.Toggle)
	if err != nil {
		return err
	}

	target := targetNone
	if enabled {
		target = targetFV3
	}

	return routing(ctx, &cmd.APIBaseCmd, methodLayer4, cmd.IP, api.Params{
		paramRouting: routingL4Target,
		paramTarget:  target,
	})
}

func routing(ctx *commands.Context, base *commands.APIBaseCmd, method, ip string, params api.Params) error {
	params[paramIP] = ip

	return base.Execute(ctx, api.Call{
		Component: component,
		Method:    method,
		Action:    "routing",
		Params:    params,
		Target:    ip,
	}, presenter.View{
		Operation: fmt.Sprintf("change %s routing of %s", method, ip),
		Statuses:  routingStatuses,
	})
}
