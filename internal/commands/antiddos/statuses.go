/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package antiddos

import (
	"github.com/combahton/cbcli/internal/presenter"
	log "github.com/sirupsen/logrus"
)

const (
	StatusRoutingChanged  presenter.Status = "routing_changed"
	StatusRoutingInvalid  presenter.Status = "routing_invalid"
	StatusAdded           presenter.Status = "added"
	StatusExists          presenter.Status = "exists"
	StatusDeleted         presenter.Status = "deleted"
	StatusNotFound        presenter.Status = "not_found"
	StatusSSLChainInvalid presenter.Status = "ssl_chain_invalid"
	StatusSSLCertInvalid  presenter.Status = "ssl_cert_invalid"
	StatusSSLKeyInvalid   presenter.Status = "ssl_key_invalid"
	StatusOK              presenter.Status = "OK"
)

var routingStatuses = presenter.Vocabulary{
	StatusRoutingChanged: {Level: log.InfoLevel, Text: "OK"},
	StatusRoutingInvalid: {Level: log.ErrorLevel, Text: "The requested routing mode is not available for this address"},
}

var domainAddStatuses = presenter.Vocabulary{
	StatusAdded:  {Level: log.InfoLevel, Text: "Domain added"},
	StatusExists: {Level: log.WarnLevel, Text: "Domain already exists"},
	StatusOK:     {Level: log.InfoLevel, Text: "OK"},
}

var domainRemoveStatuses = presenter.Vocabulary{
	StatusDeleted:  {Level: log.InfoLevel, Text: "Domain removed"},
	StatusNotFound: {Level: log.ErrorLevel, Text: "Domain not found"},
	StatusOK:       {Level: log.InfoLevel, Text: "OK"},
}

var sslAddStatuses = presenter.Vocabulary{
	StatusAdded:           {Level: log.InfoLevel, Text: "Certificate added"},
	StatusExists:          {Level: log.WarnLevel, Text: "A certificate is already installed for this domain"},
	StatusNotFound:        {Level: log.ErrorLevel, Text: "Domain not found"},
	StatusSSLChainInvalid: {Level: log.ErrorLevel, Text: "The certificate chain was rejected"},
	StatusSSLCertInvalid:  {Level: log.ErrorLevel, Text: "The certificate was rejected"},
	StatusSSLKeyInvalid:   {Level: log.ErrorLevel, Text: "The private key was rejected"},
	StatusOK:              {Level: log.InfoLevel, Text: "OK"},
}

var sslRemoveStatuses = presenter.Vocabulary{
	StatusDeleted:  {Level: log.InfoLevel, Text: "Certificate removed"},
	StatusNotFound: {Level: log.ErrorLevel, Text: "No certificate installed for this domain"},
	StatusOK:       {Level: log.InfoLevel, Text: "OK"},
}

var sslViewStatuses = presenter.Vocabulary{
	StatusNotFound: {Level: log.ErrorLevel, Text: "No certificate installed for this domain"},
}
