/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"errors"
	"fmt"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/presenter"
	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// APIBaseCmd provides the raw flag and the request/present cycle shared by
// every command that talks to the API.
type APIBaseCmd struct {
	Raw bool `help:"Return the raw JSON response" short:"r"`
}

// Fetch issues call and returns the response. When raw output was requested
// a body that is not JSON is still handed back so it can be echoed.
func (cmd *APIBaseCmd) Fetch(ctx *Context, call api.Call) (*api.Response, error) {
	return fetch(ctx, call, cmd.Raw)
}

// FetchDocument is Fetch for calls that may answer with a non-JSON document.
// Such a body comes back with a nil Outcome.
func (cmd *APIBaseCmd) FetchDocument(ctx *Context, call api.Call) (*api.Response, error) {
	return fetch(ctx, call, true)
}

func fetch(ctx *Context, call api.Call, keepMalformed bool) (*api.Response, error) {
	if ctx.Client == nil {
		return nil, fmt.Errorf("no API client configured")
	}

	log.Tracef("calling %s/%s/%s", call.Component, call.Method, call.Action)

	resp, err := ctx.Client.Call(ctx.Background(), call)
	if err != nil {
		if keepMalformed && resp != nil && errors.Is(err, utils.MalformedResponse) {
			return resp, nil
		}

		return nil, err
	}

	return resp, nil
}

// Execute issues call and renders the response through the presenter.
func (cmd *APIBaseCmd) Execute(ctx *Context, call api.Call, view presenter.View) error {
	resp, err := cmd.Fetch(ctx, call)
	if err != nil {
		return err
	}

	view.Raw = cmd.Raw

	return ctx.Printer().Present(resp, view)
}

// IPArg is a positional IP address argument.
type IPArg struct {
	IP string `arg:"" name:"ip" help:"Target IPv4 or IPv6 address"`
}

// Address validates the argument and returns it in canonical form.
func (a *IPArg) Address() (string, error) {
	return utils.ParseIPAddress(a.IP)
}

// Confirm asks before destructive or billable operations unless yes is set.
func Confirm(yes bool, prompt string) error {
	if yes {
		return nil
	}

	ok, err := utils.Prompt.Confirm(prompt)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if !ok {
		return utils.OperationAborted
	}

	return nil
}
