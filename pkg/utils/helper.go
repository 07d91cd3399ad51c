/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import (
	"crypto/x509"
	"fmt"
	"net/netip"
	"strings"
)

// ParseIPAddress validates an IPv4 or IPv6 address argument and returns its canonical form.
func ParseIPAddress(input string) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(input))
	if err != nil {
		return "", InvalidIPAddress.WithDetails(fmt.Sprintf("address/netmask is invalid: %s", input))
	}

	return addr.String(), nil
}

// SplitConfigKey splits "namespace.key" on the first dot.
func SplitConfigKey(index string) (namespace, key string, err error) {
	namespace, key, found := strings.Cut(index, ".")
	if !found || namespace == "" || key == "" {
		return "", "", InvalidConfigKey.WithDetails(fmt.Sprintf("expected <namespace>.<key>, got %q", index))
	}

	return namespace, key, nil
}

// ParseToggle interprets on/off style arguments.
func ParseToggle(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "true", "on", "yes", "enable", "enabled":
		return true, nil
	case "0", "false", "off", "no", "disable", "disabled":
		return false, nil
	default:
		return false, InvalidUserInput.WithDetails(fmt.Sprintf("%q is not a valid toggle, use true or false", input))
	}
}

func OrderCertsChain(certs []*x509.Certificate) ([]*x509.Certificate, error) {
	certMap := make(map[string]*x509.Certificate)

	var leaf *x509.Certificate

	for _, cert := range certs {
		subject := cert.Subject.String()
		certMap[subject] = cert

		if !cert.IsCA && cert.Subject.String() != cert.Issuer.String() {
			if leaf != nil {
				return nil, fmt.Errorf("multiple possible leaf certificates found")
			}

			leaf = cert
		}
	}

	if leaf == nil {
		return nil, fmt.Errorf("no valid leaf certificate found")
	}

	var ordered []*x509.Certificate

	seen := make(map[string]bool)
	current := leaf

	for {
		subject := current.Subject.String()
		if seen[subject] {
			return nil, fmt.Errorf("cycle detected in certificate chain")
		}

		seen[subject] = true

		ordered = append(ordered, current)

		if subject == current.Issuer.String() {
			break // Reached root
		}

		parent, exists := certMap[current.Issuer.String()]
		if !exists {
			// intermediates handed out by resellers often omit the root
			break
		}

		current = parent
	}

	return ordered, nil
}
