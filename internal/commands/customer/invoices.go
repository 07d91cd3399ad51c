/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package customer

import (
	"fmt"
	"os"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/commands"
	"github.com/combahton/cbcli/internal/presenter"
	log "github.com/sirupsen/logrus"
)

const StatusInvoicesPaid presenter.Status = "invoices_paid"

var unpaidStatuses = presenter.Vocabulary{
	StatusInvoicesPaid: {Level: log.InfoLevel, Text: "You have no unpaid invoices."},
}

type InvoicesCmd struct {
	All    InvoicesAllCmd    `cmd:"" help:"List every invoice"`
	Unpaid InvoicesUnpaidCmd `cmd:"" help:"List unpaid invoices"`
	View   InvoiceViewCmd    `cmd:"" help:"Show or download a single invoice"`
}

type InvoicesAllCmd struct {
	commands.APIBaseCmd
}

func (cmd *InvoicesAllCmd) Run(ctx *commands.Context) error {
	return cmd.Execute(ctx, call(methodInvoices, "view_all", nil, ""), view("list invoices", nil))
}

type InvoicesUnpaidCmd struct {
	commands.APIBaseCmd
}

func (cmd *InvoicesUnpaidCmd) Run(ctx *commands.Context) error {
	return cmd.Execute(ctx, call(methodInvoices, "view_unpaid", nil, ""), view("list unpaid invoices", unpaidStatuses))
}

// InvoiceViewCmd prints an invoice, or stores the returned document with --output.
type InvoiceViewCmd struct {
	commands.APIBaseCmd
	IDArg
	Output string `help:"Save the invoice document to this file" short:"o" type:"path"`
}

func (cmd *InvoiceViewCmd) Run(ctx *commands.Context) error {
	id, err := cmd.id()
	if err != nil {
		return err
	}

	c := call(methodInvoices, "view", api.Params{paramID: id}, id)
	v := view("show invoice "+id, nil)

	if cmd.Output == "" {
		return cmd.Execute(ctx, c, v)
	}

	resp, err := cmd.FetchDocument(ctx, c)
	if err != nil {
		return err
	}

	// denials and status tokens are reported, not saved
	switch resp.Outcome.(type) {
	case api.AccessDenied, api.StatusCode, api.BooleanResult:
		return ctx.Printer().Present(resp, v)
	}

	if err := os.WriteFile(cmd.Output, resp.Body, 0o600); err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}

	log.Debugf("wrote %d bytes to %s", len(resp.Body), cmd.Output)
	fmt.Fprintf(ctx.Writer(), "Invoice saved as %s\n", cmd.Output)

	return nil
}
