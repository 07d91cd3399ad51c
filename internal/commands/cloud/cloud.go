/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package cloud implements the cloud server lifecycle commands.
package cloud

import (
	"fmt"
	"strings"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/commands"
	"github.com/combahton/cbcli/internal/presenter"
	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

const (
	component = "cloud"

	methodServer    = "server"
	methodReinstall = "reinstall"

	paramID       = "id"
	paramTemplate = "template"
)

const (
	StatusReinstallStarted presenter.Status = "reinstall_started"
	StatusReinstalling     presenter.Status = "id_reinstalling"
	StatusTemplateInvalid  presenter.Status = "template_invalid"
	StatusOK               presenter.Status = "OK"
)

var reinstallStatuses = presenter.Vocabulary{
	StatusReinstallStarted: {Level: log.InfoLevel, Text: "Reinstallation started"},
	StatusOK:               {Level: log.InfoLevel, Text: "OK"},
	StatusReinstalling:     {Level: log.ErrorLevel, Text: "Server is currently being reinstalled"},
	StatusTemplateInvalid:  {Level: log.ErrorLevel, Text: "The template is not available for this server"},
}

// CloudCmd is the cloud server management module.
type CloudCmd struct {
	Server ServerCmd `cmd:"" help:"Cloud server lifecycle"`
}

type ServerCmd struct {
	View      ServerViewCmd  `cmd:"" help:"Show a cloud server"`
	Start     ServerStartCmd `cmd:"" help:"Power on a cloud server"`
	Stop      ServerStopCmd  `cmd:"" help:"Power off a cloud server"`
	Reset     ServerResetCmd `cmd:"" help:"Hard reset a cloud server"`
	VNC       ServerVNCCmd   `cmd:"" name:"vnc" help:"Show the VNC console access of a cloud server"`
	Reinstall ReinstallCmd   `cmd:"" help:"Reinstall a cloud server from a template"`
}

// ServerArg is the contract id of the cloud server.
type ServerArg struct {
	ID string `arg:"" name:"id" help:"Server id"`
}

func (s *ServerArg) serverID() (string, error) {
	id := strings.TrimSpace(s.ID)
	if id == "" {
		return "", utils.InvalidUserInput.WithDetails("server id is required")
	}

	return id, nil
}

func server(ctx *commands.Context, base *commands.APIBaseCmd, arg *ServerArg, action string) error {
	id, err := arg.serverID()
	if err != nil {
		return err
	}

	return base.Execute(ctx, api.Call{
		Component: component,
		Method:    methodServer,
		Action:    action,
		Params:    api.Params{paramID: id},
		Target:    id,
	}, presenter.View{Operation: fmt.Sprintf("%s server %s", action, id)})
}

type ServerViewCmd struct {
	commands.APIBaseCmd
	ServerArg
}

func (cmd *ServerViewCmd) Run(ctx *commands.Context) error {
	return server(ctx, &cmd.APIBaseCmd, &cmd.ServerArg, "view")
}

type ServerStartCmd struct {
	commands.APIBaseCmd
	ServerArg
}

func (cmd *ServerStartCmd) Run(ctx *commands.Context) error {
	return server(ctx, &cmd.APIBaseCmd, &cmd.ServerArg, "start")
}

type ServerStopCmd struct {
	commands.APIBaseCmd
	ServerArg
}

func (cmd *ServerStopCmd) Run(ctx *commands.Context) error {
	return server(ctx, &cmd.APIBaseCmd, &cmd.ServerArg, "stop")
}

type ServerResetCmd struct {
	commands.APIBaseCmd
	ServerArg
	Yes bool `help:"Do not ask for confirmation" short:"y"`
}

func (cmd *ServerResetCmd) Run(ctx *commands.Context) error {
	if err := commands.Confirm(cmd.Yes, fmt.Sprintf("Hard reset server %s?", cmd.ID)); err != nil {
		return err
	}

	return server(ctx, &cmd.APIBaseCmd, &cmd.ServerArg, "reset")
}

type ServerVNCCmd struct {
	commands.APIBaseCmd
	ServerArg
}

func (cmd *ServerVNCCmd) Run(ctx *commands.Context) error {
	return server(ctx, &cmd.APIBaseCmd, &cmd.ServerArg, "vnc")
}

type ReinstallCmd struct {
	Templates ReinstallTemplatesCmd `cmd:"" help:"List the templates a server can be reinstalled with"`
	Start     ReinstallRunCmd       `cmd:"" name:"run" help:"Reinstall a server, wiping its disks"`
}

type ReinstallTemplatesCmd struct {
	commands.APIBaseCmd
	ServerArg
}

func (cmd *ReinstallTemplatesCmd) Run(ctx *commands.Context) error {
	id, err := cmd.serverID()
	if err != nil {
		return err
	}

	return cmd.Execute(ctx, api.Call{
		Component: component,
		Method:    methodReinstall,
		Action:    "templates",
		Params:    api.Params{paramID: id},
		Target:    id,
	}, presenter.View{Operation: "list templates of server " + id})
}

type ReinstallRunCmd struct {
	commands.APIBaseCmd
	ServerArg
	Template string `arg:"" help:"Template id, see 'cloud server reinstall templates'"`
	Yes      bool   `help:"Do not ask for confirmation" short:"y"`
}

func (cmd *ReinstallRunCmd) Run(ctx *commands.Context) error {
	id, err := cmd.serverID()
	if err != nil {
		return err
	}

	template := strings.TrimSpace(cmd.Template)
	if template == "" {
		return utils.InvalidUserInput.WithDetails("template is required")
	}

	if err := commands.Confirm(cmd.Yes, fmt.Sprintf("Reinstall server %s with %s? All data will be lost", id, template)); err != nil {
		return err
	}

	return cmd.Execute(ctx, api.Call{
		Component: component,
		Method:    methodReinstall,
		Action:    "run",
		Params:    api.Params{paramID: id, paramTemplate: template},
		Target:    id,
	}, presenter.View{
		Operation: "reinstall server " + id,
		Statuses:  reinstallStatuses,
	})
}
