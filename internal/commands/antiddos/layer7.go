/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package antiddos

import (
	"strings"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/certs"
	"github.com/combahton/cbcli/internal/commands"
	"github.com/combahton/cbcli/internal/presenter"
	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

const (
	paramCertificate = "cert"
	paramPrivateKey  = "key"
	paramChain       = "chain"
)

// DomainArg is the protected host name following the IP address.
type DomainArg struct {
	Domain string `arg:"" help:"Domain name served through layer 7 filtering"`
}

func (d *DomainArg) domain() (string, error) {
	domain := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(d.Domain), "."))
	if domain == "" || strings.ContainsAny(domain, " /:") {
		return "", utils.InvalidUserInput.WithDetails("invalid domain: " + d.Domain)
	}

	return domain, nil
}

type DomainCmd struct {
	Add    DomainAddCmd    `cmd:"" help:"Add a domain to layer 7 filtering"`
	Remove DomainRemoveCmd `cmd:"" help:"Remove a domain from layer 7 filtering"`
}

type DomainAddCmd struct {
	commands.APIBaseCmd
	TargetArg
	DomainArg
}

func (cmd *DomainAddCmd) Run(ctx *commands.Context) error {
	return layer7(ctx, &cmd.APIBaseCmd, &cmd.TargetArg, &cmd.DomainArg, "domain_add", nil, domainAddStatuses)
}

type DomainRemoveCmd struct {
	commands.APIBaseCmd
	TargetArg
	DomainArg
}

func (cmd *DomainRemoveCmd) Run(ctx *commands.Context) error {
	return layer7(ctx, &cmd.APIBaseCmd, &cmd.TargetArg, &cmd.DomainArg, "domain_remove", nil, domainRemoveStatuses)
}

type SSLCmd struct {
	Add    SSLAddCmd    `cmd:"" help:"Upload a certificate for a layer 7 domain"`
	Remove SSLRemoveCmd `cmd:"" help:"Remove the certificate of a layer 7 domain"`
	View   SSLViewCmd   `cmd:"" help:"Show the certificate of a layer 7 domain"`
}

// SSLAddCmd uploads certificate material given either as PEM files or as a PKCS#12 archive.
type SSLAddCmd struct {
	commands.APIBaseCmd
	TargetArg
	DomainArg
	Cert        string `help:"PEM certificate file" type:"existingfile" xor:"source"`
	Key         string `help:"PEM private key file" type:"existingfile"`
	Chain       string `help:"PEM intermediate chain file" type:"existingfile"`
	PFX         string `help:"PKCS#12 archive holding certificate, key and chain" name:"pfx" type:"existingfile" xor:"source"`
	PFXPassword string `help:"Password of the PKCS#12 archive" name:"pfx-password" env:"CBCLI_PFX_PASSWORD"`
}

func (cmd *SSLAddCmd) Run(ctx *commands.Context) error {
	bundle, err := cmd.bundle()
	if err != nil {
		return err
	}

	params := api.Params{
		paramCertificate: bundle.Certificate,
		paramPrivateKey:  bundle.PrivateKey,
	}

	if bundle.Chain != "" {
		params[paramChain] = bundle.Chain
	}

	return layer7(ctx, &cmd.APIBaseCmd, &cmd.TargetArg, &cmd.DomainArg, "ssl_add", params, sslAddStatuses)
}

func (cmd *SSLAddCmd) bundle() (certs.Bundle, error) {
	if cmd.PFX != "" {
		log.Debugf("reading certificate bundle from %s", cmd.PFX)

		return certs.LoadPFX(cmd.PFX, cmd.PFXPassword)
	}

	if cmd.Cert == "" || cmd.Key == "" {
		return certs.Bundle{}, utils.InvalidUserInput.WithDetails("either --pfx or both --cert and --key are required")
	}

	return certs.LoadPEM(cmd.Cert, cmd.Key, cmd.Chain)
}

type SSLRemoveCmd struct {
	commands.APIBaseCmd
	TargetArg
	DomainArg
}

func (cmd *SSLRemoveCmd) Run(ctx *commands.Context) error {
	return layer7(ctx, &cmd.APIBaseCmd, &cmd.TargetArg, &cmd.DomainArg, "ssl_remove", nil, sslRemoveStatuses)
}

type SSLViewCmd struct {
	commands.APIBaseCmd
	TargetArg
	DomainArg
}

func (cmd *SSLViewCmd) Run(ctx *commands.Context) error {
	return layer7(ctx, &cmd.APIBaseCmd, &cmd.TargetArg, &cmd.DomainArg, "ssl_view", nil, sslViewStatuses)
}

func layer7(ctx *commands.Context, base *commands.APIBaseCmd, target *TargetArg, d *DomainArg, action string, params api.Params, statuses presenter.Vocabulary) error {
	if err := target.Canonicalize(); err != nil {
		return err
	}

	domain, err := d.domain()
	if err != nil {
		return err
	}

	if params == nil {
		params = api.Params{}
	}

	params[paramIP] = target.IP
	params[paramDomain] = domain

	return base.Execute(ctx, api.Call{
		Component: component,
		Method:    methodLayer7,
		Action:    action,
		Params:    params,
		Target:    target.IP,
	}, presenter.View{
		Operation: strings.ReplaceAll(action, "_", " ") + " " + domain,
		Statuses:  statuses,
	})
}
