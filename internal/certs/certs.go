/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package certs loads the certificate material uploaded for layer 7 SSL termination.
package certs

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"strings"

	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
	"software.sslmate.com/src/go-pkcs12"
)

// Bundle is a PEM encoded certificate, its private key and the issuing chain.
type Bundle struct {
	Certificate string
	PrivateKey  string
	Chain       string
}

// LoadPEM reads certificate, key and optional chain files and checks that
// the key belongs to the certificate.
func LoadPEM(certPath, keyPath, chainPath string) (Bundle, error) {
	certPEM, err := readFile("certificate", certPath)
	if err != nil {
		return Bundle{}, err
	}

	keyPEM, err := readFile("private key", keyPath)
	if err != nil {
		return Bundle{}, err
	}

	if _, err := tls.X509KeyPair(certPEM, keyPEM); err != nil {
		log.Debug(err)

		return Bundle{}, utils.InvalidCertificate.WithDetails("certificate and private key do not match: " + err.Error())
	}

	bundle := Bundle{Certificate: string(certPEM), PrivateKey: string(keyPEM)}

	if chainPath != "" {
		chainPEM, err := readFile("chain", chainPath)
		if err != nil {
			return Bundle{}, err
		}

		if _, err := ParseCertificates(chainPEM); err != nil {
			return Bundle{}, err
		}

		bundle.Chain = string(chainPEM)
	}

	return bundle, nil
}

// LoadPFX decodes a PKCS#12 archive. The leaf becomes the certificate and
// the remaining certificates are ordered leaf to root to form the chain.
func LoadPFX(path, password string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, utils.InvalidCertificate.WithDetails(fmt.Sprintf("unable to read pfx: %v", err))
	}

	privateKey, certificate, extraCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		if strings.Contains(err.Error(), "decryption password incorrect") {
			return Bundle{}, utils.InvalidCertificate.WithDetails("pfx password is incorrect")
		}

		return Bundle{}, utils.InvalidCertificate.WithDetails(err.Error())
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return Bundle{}, utils.InvalidCertificate.WithDetails(err.Error())
	}

	bundle := Bundle{
		Certificate: EncodeCertificates(certificate),
		PrivateKey:  string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})),
	}

	if len(extraCerts) == 0 {
		return bundle, nil
	}

	ordered, err := utils.OrderCertsChain(append([]*x509.Certificate{certificate}, extraCerts...))
	if err != nil {
		log.Debugf("unable to order pfx chain, keeping archive order: %v", err)

		ordered = append([]*x509.Certificate{certificate}, extraCerts...)
	}

	// ordered[0] is the leaf
	bundle.Chain = EncodeCertificates(ordered[1:]...)

	return bundle, nil
}

// ParseCertificates parses every CERTIFICATE block of data.
func ParseCertificates(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate

	for {
		var block *pem.Block

		block, data = pem.Decode(data)
		if block == nil {
			break
		}

		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, utils.InvalidCertificate.WithDetails(err.Error())
		}

		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, utils.InvalidCertificate.WithDetails("no PEM certificate found")
	}

	return certs, nil
}

// EncodeCertificates returns certs as concatenated PEM blocks.
func EncodeCertificates(certs ...*x509.Certificate) string {
	var sb strings.Builder

	for _, cert := range certs {
		sb.Write(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw}))
	}

	return sb.String()
}

func readFile(what, path string) ([]byte, error) {
	if path == "" {
		return nil, utils.InvalidCertificate.WithDetails(what + " file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.InvalidCertificate.WithDetails(fmt.Sprintf("unable to read %s: %v", what, err))
	}

	return data, nil
}
