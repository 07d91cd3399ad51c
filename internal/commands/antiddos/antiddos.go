/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package antiddos implements the DDoS mitigation commands.
package antiddos

import (
	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/commands"
	"github.com/combahton/cbcli/internal/presenter"
)

const (
	component = "antiddos"

	methodStatus    = "status"
	methodLayer4    = "layer4"
	methodLayer7    = "layer7"
	methodIncidents = "incidents"

	paramIP      = "ipaddr"
	paramRouting = "routing"
	paramTarget  = "target"
	paramDomain  = "domain"
)

// AntiDDoSCmd is the antiddos management module.
type AntiDDoSCmd struct {
	Status    StatusCmd    `cmd:"" help:"Show the current mitigation status of an IP address"`
	Layer4    Layer4Cmd    `cmd:"" name:"layer4" help:"Layer 4 routing"`
	Layer7    Layer7Cmd    `cmd:"" name:"layer7" help:"Layer 7 routing"`
	Domain    DomainCmd    `cmd:"" help:"Layer 7 protected domains"`
	SSL       SSLCmd       `cmd:"" name:"ssl" help:"Layer 7 SSL certificates"`
	Incidents IncidentsCmd `cmd:"" help:"DDoS incident history"`
}

// TargetArg is the protected IP address every antiddos command acts on.
type TargetArg struct {
	commands.IPArg
}

// Canonicalize validates the address and rewrites it in canonical form.
func (t *TargetArg) Canonicalize() error {
	addr, err := t.Address()
	if err != nil {
		return err
	}

	t.IP = addr

	return nil
}

// StatusCmd shows the current status of a specific IP.
type StatusCmd struct {
	commands.APIBaseCmd
	TargetArg
}

func (cmd *StatusCmd) Run(ctx *commands.Context) error {
	if err := cmd.Canonicalize(); err != nil {
		return err
	}

	return cmd.Execute(ctx, api.Call{
		Component: component,
		Method:    methodStatus,
		Action:    "show",
		Params:    api.Params{paramIP: cmd.IP},
		Target:    cmd.IP,
	}, presenter.View{Operation: "show status of " + cmd.IP})
}

// IncidentsCmd groups the incident queries.
type IncidentsCmd struct {
	IP  IncidentsIPCmd  `cmd:"" name:"ip" help:"Show the last 25 incidents of an IP address"`
	All IncidentsAllCmd `cmd:"" help:"Show the last 100 incidents in total"`
}

type IncidentsIPCmd struct {
	commands.APIBaseCmd
	TargetArg
}

func (cmd *IncidentsIPCmd) Run(ctx *commands.Context) error {
	if err := cmd.Canonicalize(); err != nil {
		return err
	}

	return cmd.Execute(ctx, api.Call{
		Component: component,
		Method:    methodIncidents,
		Action:    "show",
		Params:    api.Params{paramIP: cmd.IP},
		Target:    cmd.IP,
	}, presenter.View{Operation: "show incidents of " + cmd.IP})
}

type IncidentsAllCmd struct {
	commands.APIBaseCmd
}

func (cmd *IncidentsAllCmd) Run(ctx *commands.Context) error {
	return cmd.Execute(ctx, api.Call{
		Component: component,
		Method:    methodIncidents,
		Action:    "show_all",
	}, presenter.View{Operation: "show incidents"})
}
