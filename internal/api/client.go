/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package api

import (
	"context"
)

// Call names a remote handler and the parameters to send to it.
type Call struct {
	Component string
	Method    string
	Action    string
	Params    Params
	// Target is the identifier being acted on, reported when access is denied.
	Target string
}

// Response is a raw body together with its classification.
type Response struct {
	Body    []byte
	Outcome Outcome
}

// Caller issues a single API call.
type Caller interface {
	Call(ctx context.Context, call Call) (*Response, error)
}

// Client runs build, transport and classification for one call.
type Client struct {
	Builder   *Builder
	Transport Transport
}

func NewClient(builder *Builder, transport Transport) *Client {
	return &Client{Builder: builder, Transport: transport}
}

func (c *Client) Call(ctx context.Context, call Call) (*Response, error) {
	req, err := c.Builder.Build(call.Component, call.Method, call.Action, call.Params)
	if err != nil {
		return nil, err
	}

	body, err := req.Encode()
	if err != nil {
		return nil, err
	}

	raw, err := c.Transport.Post(ctx, body)
	if err != nil {
		return nil, err
	}

	outcome, err := Classify(raw, call.Target)
	if err != nil {
		return &Response{Body: raw}, err
	}

	return &Response{Body: raw, Outcome: outcome}, nil
}
