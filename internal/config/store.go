/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

const (
	NamespaceUser   = "user"
	NamespaceLegacy = "api" // credentials section written by the first releases
	NamespaceCore   = "core"

	KeyEmail     = "email"
	KeySecret    = "key"
	KeyKeyring   = "keyring"
	KeyVerbosity = "verbosity"
	KeyVerbose   = "verbose"
	KeyEndpoint  = "endpoint"
	KeyTimeout   = "timeout"
)

// ErrNothingToClear is returned by the clear operations when no credentials are stored.
var ErrNothingToClear = errors.New("no credentials stored")

// Credentials is the account identifier and API secret sent with every request.
type Credentials struct {
	Email  string
	Secret string
}

// Store is the local configuration file. It is read once when opened and
// rewritten as a whole on every mutation.
type Store struct {
	path    string
	tree    Tree
	secrets SecretStore
}

// Open reads the configuration file at path.
func Open(path string) (*Store, error) {
	tree, err := LoadTree(path)
	if err != nil {
		log.Debug(err)

		return nil, utils.FailedReadingConfiguration.WithDetails(err.Error())
	}

	return &Store{path: path, tree: tree}, nil
}

// UseSecretStore routes secrets through an external backend such as the OS keychain.
func (s *Store) UseSecretStore(secrets SecretStore) {
	s.secrets = secrets
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns a single value.
func (s *Store) Get(namespace, key string) (string, bool) {
	values, ok := s.tree[namespace]
	if !ok {
		return "", false
	}

	v, ok := values[key]

	return v, ok
}

// Set stores value under namespace.key, creating the namespace if needed, and persists the file.
func (s *Store) Set(namespace, key, value string) error {
	s.set(namespace, key, value)

	return s.save()
}

// Namespace returns a copy of every key/value pair stored in namespace.
func (s *Store) Namespace(namespace string) (map[string]string, bool) {
	values, ok := s.tree[namespace]
	if !ok {
		return nil, false
	}

	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}

	return out, true
}

// Namespaces lists namespace names in sorted order.
func (s *Store) Namespaces() []string {
	names := make([]string, 0, len(s.tree))
	for ns := range s.tree {
		names = append(names, ns)
	}

	sort.Strings(names)

	return names
}

// LoadCredentials returns the stored account pair or MissingCredentials.
func (s *Store) LoadCredentials() (Credentials, error) {
	for _, ns := range []string{NamespaceUser, NamespaceLegacy} {
		values, ok := s.tree[ns]
		if !ok {
			continue
		}

		creds := Credentials{Email: strings.TrimSpace(values[KeyEmail]), Secret: values[KeySecret]}

		if values[KeyKeyring] == "true" && creds.Email != "" {
			if s.secrets == nil {
				s.secrets = NewKeyringSecrets()
			}

			secret, err := s.secrets.Get(creds.Email)
			if err != nil {
				log.Debugf("keyring lookup for %s failed: %v", creds.Email, err)

				continue
			}

			creds.Secret = secret
		}

		// an incomplete pair falls through to the legacy namespace
		if creds.Email == "" || creds.Secret == "" {
			log.Debugf("incomplete credentials in %s namespace", ns)

			continue
		}

		return creds, nil
	}

	return Credentials{}, utils.MissingCredentials
}

// SaveCredentials stores the account pair, replacing any previous one.
func (s *Store) SaveCredentials(email, secret string) error {
	email = strings.TrimSpace(email)
	if email == "" || secret == "" {
		return utils.InvalidUserInput.WithDetails("both email and API key are required")
	}

	s.set(NamespaceUser, KeyEmail, email)

	if s.secrets != nil {
		if err := s.secrets.Set(email, secret); err != nil {
			return fmt.Errorf("failed to store API key in keyring: %w", err)
		}

		delete(s.tree[NamespaceUser], KeySecret)
		s.set(NamespaceUser, KeyKeyring, "true")
	} else {
		s.set(NamespaceUser, KeySecret, secret)
		delete(s.tree[NamespaceUser], KeyKeyring)
	}

	return s.save()
}

// HasCredentials reports whether a credentials namespace exists.
func (s *Store) HasCredentials() bool {
	_, user := s.tree[NamespaceUser]
	_, legacy := s.tree[NamespaceLegacy]

	return user || legacy
}

// ClearCredentials removes the credentials namespaces and leaves everything else intact.
func (s *Store) ClearCredentials() error {
	if !s.HasCredentials() {
		return ErrNothingToClear
	}

	s.forgetKeyringSecrets()

	delete(s.tree, NamespaceUser)
	delete(s.tree, NamespaceLegacy)

	return s.save()
}

// ClearAll wipes every namespace, not only the credentials.
func (s *Store) ClearAll() error {
	if !s.HasCredentials() {
		return ErrNothingToClear
	}

	s.forgetKeyringSecrets()

	s.tree = Tree{}

	return s.save()
}

// Verbosity is the log level configured in the core namespace, empty when unset.
func (s *Store) Verbosity() string {
	if v, ok := s.Get(NamespaceCore, KeyVerbosity); ok && v != "" {
		return v
	}

	v, _ := s.Get(NamespaceCore, KeyVerbose)

	return v
}

func (s *Store) forgetKeyringSecrets() {
	for _, ns := range []string{NamespaceUser, NamespaceLegacy} {
		values := s.tree[ns]
		if values[KeyKeyring] != "true" || values[KeyEmail] == "" {
			continue
		}

		if s.secrets == nil {
			s.secrets = NewKeyringSecrets()
		}

		if err := s.secrets.Delete(values[KeyEmail]); err != nil {
			log.Warnf("unable to remove API key for %s from keyring: %v", values[KeyEmail], err)
		}
	}
}

func (s *Store) set(namespace, key, value string) {
	if s.tree[namespace] == nil {
		s.tree[namespace] = map[string]string{}
	}

	s.tree[namespace][key] = value
}

func (s *Store) save() error {
	if err := WriteTree(s.path, s.tree); err != nil {
		log.Debug(err)

		return utils.FailedWritingConfiguration.WithDetails(err.Error())
	}

	log.Tracef("configuration written to %s", s.path)

	return nil
}
