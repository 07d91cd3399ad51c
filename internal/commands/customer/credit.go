/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package customer

import (
	"fmt"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/commands"
	"github.com/combahton/cbcli/internal/presenter"
)

const currency = "EUR"

// CreditCmd prints the prepaid credit amount.
type CreditCmd struct {
	commands.APIBaseCmd
	Currency bool `help:"Append the currency to the amount" short:"c"`
}

func (cmd *CreditCmd) Run(ctx *commands.Context) error {
	resp, err := cmd.Fetch(ctx, call(methodCredits, "view", nil, ""))
	if err != nil {
		return err
	}

	if cmd.Raw {
		return ctx.Printer().Raw(resp.Body)
	}

	amount, ok := creditAmount(resp.Outcome)
	if !ok {
		return ctx.Printer().Present(resp, presenter.View{Operation: "show credit"})
	}

	if cmd.Currency {
		amount += " " + currency
	}

	fmt.Fprintln(ctx.Writer(), amount)

	return nil
}

func creditAmount(outcome api.Outcome) (string, bool) {
	rec, ok := outcome.(api.Record)
	if !ok {
		return "", false
	}

	obj, ok := rec.Value.(*api.Object)
	if !ok {
		return "", false
	}

	v, ok := obj.Get("amount")
	if !ok {
		return "", false
	}

	return presenter.FormatValue(v), true
}
