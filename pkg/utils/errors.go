/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

// CustomError carries the process exit code along with the message reported to the user.
type CustomError struct {
	Code    int
	Message string
	Details string
}

func (e CustomError) Error() string {
	if e.Details == "" {
		return e.Message
	}

	return e.Message + ": " + e.Details
}

// Is matches on the exit code so that errors carrying extra details still
// compare equal to the sentinel they were derived from.
func (e CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	if !ok {
		return false
	}

	return e.Code == t.Code && e.Message == t.Message
}

// WithDetails returns a copy of the error with its details replaced.
func (e CustomError) WithDetails(details string) CustomError {
	e.Details = details

	return e
}
