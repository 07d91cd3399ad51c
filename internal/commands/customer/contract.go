/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package customer

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
	StatusExtended          presenter.Status = "extended"
	StatusNotExtendable     presenter.Status = "not_extendable"
	StatusAutoextendEnabled presenter.Status = "autoextend_enabled"
	StatusAutoextendOff     presenter.Status = "autoextend_disabled"
	StatusOrdered           presenter.Status = "ordered"
	StatusInsufficientFunds presenter.Status = "insufficient_credit"
	StatusProductNotFound   presenter.Status = "product_not_found"
	StatusOK                presenter.Status = "OK"
)

var extendStatuses = presenter.Vocabulary{
	StatusExtended:          {Level: log.InfoLevel, Text: "Contract extended"},
	StatusOK:                {Level: log.InfoLevel, Text: "OK"},
	StatusNotExtendable:     {Level: log.ErrorLevel, Text: "The contract can not be extended"},
	StatusInsufficientFunds: {Level: log.ErrorLevel, Text: "Insufficient credit"},
}

var autoextendStatuses = presenter.Vocabulary{
	StatusAutoextendEnabled: {Level: log.InfoLevel, Text: "Auto-extension enabled"},
	StatusAutoextendOff:     {Level: log.InfoLevel, Text: "Auto-extension disabled"},
	StatusOK:                {Level: log.InfoLevel, Text: "OK"},
}

var orderStatuses = presenter.Vocabulary{
	StatusOrdered:           {Level: log.InfoLevel, Text: "Order placed"},
	StatusOK:                {Level: log.InfoLevel, Text: "OK"},
	StatusInsufficientFunds: {Level: log.ErrorLevel, Text: "Insufficient credit"},
	StatusProductNotFound:   {Level: log.ErrorLevel, Text: "Product not found"},
}

type ContractCmd struct {
	View       ContractViewCmd       `cmd:"" help:"Show a contract"`
	All        ContractAllCmd        `cmd:"" aliases:"view-all" help:"List every contract"`
	Extend     ContractExtendCmd     `cmd:"" help:"Extend a contract by one period"`
	Autoextend ContractAutoextendCmd `cmd:"" help:"Change auto-extension of a contract, disables it unless --enable is given"`
	Order      ContractOrderCmd      `cmd:"" help:"Order a product"`
}

type ContractViewCmd struct {
	commands.APIBaseCmd
	IDArg
}

func (cmd *ContractViewCmd) Run(ctx *commands.Context) error {
	id, err := cmd.id()
	if err != nil {
		return err
	}

	return cmd.Execute(ctx, call(methodContract, "view", api.Params{paramID: id}, id), view("show contract "+id, nil))
}

type ContractAllCmd struct {
	commands.APIBaseCmd
}

func (cmd *ContractAllCmd) Run(ctx *commands.Context) error {
	return cmd.Execute(ctx, call(methodContract, "view_all", nil, ""), view("list contracts", nil))
}

type ContractExtendCmd struct {
	commands.APIBaseCmd
	IDArg
}

func (cmd *ContractExtendCmd) Run(ctx *commands.Context) error {
	id, err := cmd.id()
	if err != nil {
		return err
	}

	return cmd.Execute(ctx, call(methodContract, "extend", api.Params{paramID: id}, id), view("extend contract "+id, extendStatuses))
}

type ContractAutoextendCmd struct {
	commands.APIBaseCmd
	IDArg
	Enable bool `help:"Enable auto-extension"`
}

func (cmd *ContractAutoextendCmd) Run(ctx *commands.Context) error {
	id, err := cmd.id()
	if err != nil {
		return err
	}

	state := "disable"
	if cmd.Enable {
		state = "enable"
	}

	return cmd.Execute(ctx,
		call(methodContract, "autoextend", api.Params{paramID: id, paramSwitch: state}, id),
		view(fmt.Sprintf("%s auto-extension of contract %s", state, id), autoextendStatuses))
}

// ContractOrderCmd places a billable order and asks first unless --yes is given.
type ContractOrderCmd struct {
	commands.APIBaseCmd
	Product string `arg:"" help:"Product id"`
	Yes     bool   `help:"Do not ask for confirmation" short:"y"`
}

func (cmd *ContractOrderCmd) Run(ctx *commands.Context) error {
	product := strings.TrimSpace(cmd.Product)
	if product == "" {
		return utils.InvalidUserInput.WithDetails("product is required")
	}

	if err := commands.Confirm(cmd.Yes, fmt.Sprintf("Order product %s?", product)); err != nil {
		return err
	}

	return cmd.Execute(ctx, call(methodContract, "order", api.Params{paramID: product}, product), view("order "+product, orderStatuses))
}
