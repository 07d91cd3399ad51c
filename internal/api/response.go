/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package api

import (
	"bytes"

	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// StatusUnauthenticated is returned by every method when the account may not touch the target.
const StatusUnauthenticated = "id_unauthenticated"

// Outcome is the classified form of a response body. It is one of
// AccessDenied, StatusCode, BooleanResult or Record.
type Outcome interface {
	outcome()
}

// AccessDenied means the API refused to act on Target for this account.
type AccessDenied struct {
	Target string
}

// StatusCode carries a method specific status token such as "routing_changed".
// Object is the reply the token was found in.
type StatusCode struct {
	Token  string
	Object *Object
}

// HasDetails reports whether the reply carried fields besides the status token.
func (s StatusCode) HasDetails() bool {
	return s.Object != nil && len(s.Object.Keys) > 1
}

// BooleanResult is the {"success": bool} reply of the server control methods.
type BooleanResult struct {
	Success bool
}

// Record is any other value: an *Object, a []any list, a scalar or nil.
type Record struct {
	Value any
}

func (AccessDenied) outcome()  {}
func (StatusCode) outcome()    {}
func (BooleanResult) outcome() {}
func (Record) outcome()        {}

// Empty reports whether the record carries nothing worth rendering.
func (r Record) Empty() bool {
	switch v := r.Value.(type) {
	case nil:
		return true
	case []any:
		return len(v) == 0
	case *Object:
		return len(v.Keys) == 0
	case string:
		return v == ""
	default:
		return false
	}
}

// Classify decodes body and sorts it into an Outcome. target is the
// identifier the request was acting on and is carried by AccessDenied.
func Classify(body []byte, target string) (Outcome, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Record{}, nil
	}

	value, err := decodeOrdered(body)
	if err != nil {
		log.Debugf("response is not valid JSON: %v", err)

		return nil, utils.MalformedResponse
	}

	obj, ok := value.(*Object)
	if !ok {
		return Record{Value: value}, nil
	}

	if raw, ok := obj.Get("status"); ok {
		if token, ok := raw.(string); ok {
			if token == StatusUnauthenticated {
				return AccessDenied{Target: target}, nil
			}

			return StatusCode{Token: token, Object: obj}, nil
		}
	}

	if raw, ok := obj.Get("success"); ok {
		if success, ok := raw.(bool); ok {
			return BooleanResult{Success: success}, nil
		}
	}

	return Record{Value: obj}, nil
}
