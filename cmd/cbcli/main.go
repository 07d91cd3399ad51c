/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package main

import (
	"errors"
	"os"

	"github.com/combahton/cbcli/internal/cli"
	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	err := cli.Execute(os.Args)
	if err != nil {
		handleErrorAndExit(err)
	}
}

func handleErrorAndExit(err error) {
	var customErr utils.CustomError
	if errors.As(err, &customErr) {
		// denials were already reported to the user
		if customErr != utils.HelpRequested && customErr.Code != utils.AccessDenied.Code {
			log.Error(customErr.Error())
		}

		os.Exit(customErr.Code)
	} else {
		log.Error(err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
