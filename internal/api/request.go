/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package api

import (
	"encoding/json"
	"sort"

	"github.com/combahton/cbcli/internal/config"
	log "github.com/sirupsen/logrus"
)

const (
	FieldEmail     = "email"
	FieldSecret    = "secret"
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldAction    = "action"

	redacted = "********"
)

// Params are the method specific request fields.
type Params map[string]any

// Request is the flat JSON body posted to the API.
type Request map[string]any

// Encode serialises the request body.
func (r Request) Encode() ([]byte, error) {
	return json.Marshal(map[string]any(r))
}

// CredentialSource hands out the account used to authenticate requests.
type CredentialSource interface {
	LoadCredentials() (config.Credentials, error)
}

// Builder assembles authenticated requests.
type Builder struct {
	Credentials CredentialSource
}

func NewBuilder(creds CredentialSource) *Builder {
	return &Builder{Credentials: creds}
}

// Build returns a fresh request for component/method/action carrying params.
// MissingCredentials from the credential source is returned unchanged.
func (b *Builder) Build(component, method, action string, params Params) (Request, error) {
	creds, err := b.Credentials.LoadCredentials()
	if err != nil {
		return nil, err
	}

	req := Request{
		FieldComponent: component,
		FieldMethod:    method,
		FieldAction:    action,
	}

	for k, v := range params {
		req[k] = v
	}

	req[FieldEmail] = creds.Email
	req[FieldSecret] = creds.Secret

	if log.IsLevelEnabled(log.DebugLevel) {
		logRequest(req)
	}

	return req, nil
}

func logRequest(req Request) {
	keys := make([]string, 0, len(req))
	for k := range req {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	log.Debug("[Verbose] Following data will be sent:")

	for _, k := range keys {
		v := req[k]
		if k == FieldSecret {
			v = redacted
		}

		log.Debugf("%s == %v", k, v)
	}
}
