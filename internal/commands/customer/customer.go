/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package customer implements the billing and contract commands.
package customer

import (
	"strings"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/presenter"
	"github.com/combahton/cbcli/pkg/utils"
)

const (
	component = "customer"

	methodInvoices = "invoices"
	methodCredits  = "credits"
	methodContract = "contract"

	paramID     = "id"
	paramSwitch = "switch"
)

// CustomerCmd is the customer management module.
type CustomerCmd struct {
	Invoices InvoicesCmd `cmd:"" help:"Invoices of the account"`
	Credit   CreditCmd   `cmd:"" aliases:"credits" help:"Show the prepaid credit of the account"`
	Contract ContractCmd `cmd:"" help:"Contracts of the account"`
}

// IDArg is an invoice or contract id.
type IDArg struct {
	ID string `arg:"" name:"id" help:"Invoice or contract id"`
}

func (a *IDArg) id() (string, error) {
	id := strings.TrimSpace(a.ID)
	if id == "" {
		return "", utils.InvalidUserInput.WithDetails("id is required")
	}

	return id, nil
}

func call(method, action string, params api.Params, target string) api.Call {
	return api.Call{
		Component: component,
		Method:    method,
		Action:    action,
		Params:    params,
		Target:    target,
	}
}

func view(operation string, statuses presenter.Vocabulary) presenter.View {
	return presenter.View{Operation: operation, Statuses: statuses}
}
