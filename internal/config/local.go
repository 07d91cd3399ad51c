/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tree is the two-level namespace -> key -> value configuration model.
type Tree map[string]map[string]string

// LoadTree loads the configuration tree from a YAML file. A missing file yields an empty tree.
func LoadTree(path string) (Tree, error) {
	tree := Tree{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tree, nil
		}

		return nil, err
	}

	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// yaml leaves empty namespaces as nil maps
	for ns, values := range tree {
		if values == nil {
			tree[ns] = map[string]string{}
		}
	}

	return tree, nil
}

// WriteTree replaces the file at path with the YAML encoding of tree.
// The data is written to a temporary file in the same directory and renamed
// into place, so an interrupted write never leaves a truncated file behind.
func WriteTree(path string, tree Tree) error {
	data, err := yaml.Marshal(tree)
	if err != nil {
		return err
	}

	if len(tree) == 0 {
		data = nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()

		return err
	}

	if err := tmp.Sync(); err != nil {
		cleanup()

		return err
	}

	if err := tmp.Chmod(0o600); err != nil {
		cleanup()

		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return err
	}

	return nil
}
