/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package presenter renders classified API responses for the terminal.
package presenter

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Status is a method specific token found in the "status" field of a response.
type Status string

// Entry tells the presenter how to report a status token.
// Info and debug entries are printed, warn entries are logged,
// error entries and above fail the command.
type Entry struct {
	Level log.Level
	Text  string
}

// Vocabulary is the closed set of status tokens a command knows about.
// Tokens missing from it are reported verbatim as failures, unless the
// reply carries fields besides the token.
type Vocabulary map[Status]Entry

// Lookup returns the entry for token.
func (v Vocabulary) Lookup(token string) (Entry, bool) {
	e, ok := v[Status(token)]

	return e, ok
}

// View is the display contract of a single command.
type View struct {
	// Raw writes the response body unchanged.
	Raw bool
	// Operation names what was attempted, used in failure messages.
	Operation string
	// Statuses maps the status tokens of the called method.
	Statuses Vocabulary
}

type Presenter struct {
	Out io.Writer
}

func New(out io.Writer) *Presenter {
	if out == nil {
		out = os.Stdout
	}

	return &Presenter{Out: out}
}

// Present renders resp according to view. The returned error carries the
// exit code for denied or failed operations.
func (p *Presenter) Present(resp *api.Response, view View) error {
	if view.Raw {
		return p.Raw(resp.Body)
	}

	switch outcome := resp.Outcome.(type) {
	case api.AccessDenied:
		fmt.Fprintf(p.Out, "Access denied: You are not allowed to modify %s\n", outcome.Target)
		log.Errorf("access denied for %s", outcome.Target)
		log.Debugf("Response: %s", resp.Body)

		return utils.AccessDenied.WithDetails(outcome.Target)
	case api.StatusCode:
		return p.status(outcome, view)
	case api.BooleanResult:
		if outcome.Success {
			fmt.Fprintln(p.Out, "OK")

			return nil
		}

		return utils.OperationFailed.WithDetails(fmt.Sprintf("failed to %s", view.operation()))
	case api.Record:
		return p.Record(outcome)
	default:
		return utils.MalformedResponse
	}
}

// Raw echoes body, adding a trailing newline when it lacks one.
func (p *Presenter) Raw(body []byte) error {
	if _, err := p.Out.Write(body); err != nil {
		return err
	}

	if len(body) > 0 && !bytes.HasSuffix(body, []byte("\n")) {
		_, err := io.WriteString(p.Out, "\n")

		return err
	}

	return nil
}

// Record renders a plain record: objects as key/value tables, lists of
// objects as tables, anything else echoed.
func (p *Presenter) Record(rec api.Record) error {
	if rec.Empty() {
		return nil
	}

	switch v := rec.Value.(type) {
	case *api.Object:
		return KeyValueTable(p.Out, v)
	case []any:
		objects := make([]*api.Object, 0, len(v))

		for _, item := range v {
			obj, ok := item.(*api.Object)
			if !ok {
				return p.lines(v)
			}

			objects = append(objects, obj)
		}

		return ListTable(p.Out, objects)
	default:
		_, err := fmt.Fprintln(p.Out, FormatValue(v))

		return err
	}
}

func (p *Presenter) lines(items []any) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(p.Out, FormatValue(item)); err != nil {
			return err
		}
	}

	return nil
}

// status reports a known token through the vocabulary. An unknown token that
// came with other fields is a record whose status is part of the data.
func (p *Presenter) status(outcome api.StatusCode, view View) error {
	entry, ok := view.Statuses.Lookup(outcome.Token)
	if !ok {
		if outcome.HasDetails() {
			return p.Record(api.Record{Value: outcome.Object})
		}

		return utils.OperationFailed.WithDetails(outcome.Token)
	}

	switch {
	case entry.Level <= log.ErrorLevel:
		return utils.OperationFailed.WithDetails(entry.Text)
	case entry.Level == log.WarnLevel:
		log.Warn(entry.Text)
	default:
		fmt.Fprintln(p.Out, entry.Text)
	}

	return nil
}

func (v View) operation() string {
	if v.Operation == "" {
		return "complete the operation"
	}

	return v.Operation
}
