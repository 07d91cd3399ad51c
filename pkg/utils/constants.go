/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

type ReturnCode int

var ProjectVersion string = "Development Build"

const (
	// ProjectName is the name of the executable
	ProjectName = "cbcli"
	// ClientName is the name used in the User-Agent header
	ClientName = "cbcli"

	// APIEndpoint is the single endpoint every request is posted to
	APIEndpoint = "https://api.combahton.net/v2"

	HelpHeader = "\nSimple CLI Interface to interact with the combahton API\n\n"

	// Return Codes
	Success ReturnCode = 0
)

// (1-19) Basic errors
var (
	HelpRequested              = CustomError{Code: 5, Message: "flag: help requested"}
	GenericFailure             = CustomError{Code: 10, Message: "GenericFailure"}
	FailedReadingConfiguration = CustomError{Code: 11, Message: "FailedReadingConfiguration"}
	FailedWritingConfiguration = CustomError{Code: 12, Message: "FailedWritingConfiguration"}
)

// (20-69) Input errors
var (
	MissingCredentials = CustomError{
		Code:    20,
		Message: "MissingCredentials",
		Details: "You haven't added your credentials yet.\nPlease provide your API credentials, use:\n\tcbcli login <email>\nor\n\tcbcli config set user.email <email>\n\tcbcli config set user.key <api-key>",
	}
	InvalidUserInput   = CustomError{Code: 21, Message: "InvalidUserInput"}
	InvalidIPAddress   = CustomError{Code: 22, Message: "InvalidIPAddress", Details: "address/netmask is invalid"}
	InvalidConfigKey   = CustomError{Code: 23, Message: "InvalidConfigKey", Details: "expected <namespace>.<key>"}
	NamespaceNotFound  = CustomError{Code: 24, Message: "NamespaceNotFound", Details: "Namespace not found."}
	InvalidCertificate = CustomError{Code: 25, Message: "InvalidCertificate"}
	OperationAborted   = CustomError{Code: 26, Message: "OperationAborted", Details: "Aborted!"}
)

// (70-99) Connection errors
var TransportError = CustomError{Code: 70, Message: "TransportError"}

// (100-149) Response errors
var (
	MalformedResponse = CustomError{Code: 100, Message: "MalformedResponse", Details: "unknown error, try again later"}
	AccessDenied      = CustomError{Code: 101, Message: "AccessDenied"}
	OperationFailed   = CustomError{Code: 102, Message: "OperationFailed"}
)
