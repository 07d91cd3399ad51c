/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import "github.com/zalando/go-keyring"

const keyringService = "cbcli"

// SecretStore keeps API secrets outside of the configuration file.
type SecretStore interface {
	Get(account string) (string, error)
	Set(account, secret string) error
	Delete(account string) error
}

// KeyringSecrets stores secrets in the OS keychain.
type KeyringSecrets struct {
	Service string
}

func NewKeyringSecrets() *KeyringSecrets {
	return &KeyringSecrets{Service: keyringService}
}

func (k *KeyringSecrets) Get(account string) (string, error) {
	return keyring.Get(k.Service, account)
}

func (k *KeyringSecrets) Set(account, secret string) error {
	return keyring.Set(k.Service, account, secret)
}

func (k *KeyringSecrets) Delete(account string) error {
	err := keyring.Delete(k.Service, account)
	if err == keyring.ErrNotFound {
		return nil
	}

	return err
}
