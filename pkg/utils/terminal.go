/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordReader reads a secret from the terminal without echoing it.
type PasswordReader interface {
	ReadPassword() (string, error)
}

type RealPasswordReader struct{}

func (pr *RealPasswordReader) ReadPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		reader := bufio.NewReader(os.Stdin)

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}

		return strings.TrimRight(line, "\r\n"), nil
	}

	pass, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}

	return string(pass), nil
}

// PR is the package-wide password reader, swapped out in tests.
var PR PasswordReader = &RealPasswordReader{}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Prompt is the package-wide confirmer, swapped out in tests.
var Prompt Confirmer = &StdinConfirmer{In: os.Stdin, Out: os.Stdout}
