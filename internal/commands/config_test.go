/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/combahton/cbcli/internal/config"
	"github.com/combahton/cbcli/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetGet(t *testing.T) {
	var out bytes.Buffer

	ctx := &Context{Store: newStore(t), Out: &out}

	require.NoError(t, (&ConfigSetCmd{Index: "user.email", Value: "a@b.c"}).Run(ctx))
	require.NoError(t, (&ConfigSetCmd{Index: "user.key", Value: "k"}).Run(ctx))
	require.NoError(t, (&ConfigSetCmd{Index: "core.verbosity", Value: "debug"}).Run(ctx))

	require.NoError(t, (&ConfigGetCmd{Namespace: "user"}).Run(ctx))
	assert.Equal(t, "user.email: a@b.c\nuser.key: k\n", out.String())

	out.Reset()
	require.NoError(t, (&ConfigListCmd{}).Run(ctx))
	assert.Equal(t, "core\nuser\n", out.String())

	reopened, err := config.Open(ctx.Store.Path())
	require.NoError(t, err)

	creds, err := reopened.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", creds.Email)
}

func TestConfigSetCmd_InvalidKey(t *testing.T) {
	ctx := &Context{Store: newStore(t), Out: &bytes.Buffer{}}

	for _, index := range []string{"email", ".key", "user.", ""} {
		err := (&ConfigSetCmd{Index: index, Value: "x"}).Run(ctx)
		assert.True(t, errors.Is(err, utils.InvalidConfigKey), index)
	}

	assert.Empty(t, ctx.Store.Namespaces())
}

func TestConfigGetCmd_NamespaceNotFound(t *testing.T) {
	var out bytes.Buffer

	err := (&ConfigGetCmd{Namespace: "missing"}).Run(&Context{Store: newStore(t), Out: &out})

	assert.True(t, errors.Is(err, utils.NamespaceNotFound))
	assert.Contains(t, err.Error(), "Namespace not found.")
	assert.Empty(t, out.String())
}

func TestConfigClearCmd(t *testing.T) {
	t.Run("credentials only", func(t *testing.T) {
		var out bytes.Buffer

		ctx := &Context{Store: newStore(t), Out: &out}
		require.NoError(t, ctx.Store.SaveCredentials("a@b.c", "k"))
		require.NoError(t, ctx.Store.Set("core", "verbosity", "debug"))

		require.NoError(t, (&ConfigClearCmd{}).Run(ctx))
		assert.Equal(t, "Stored credentials removed.\n", out.String())
		assert.Equal(t, []string{"core"}, ctx.Store.Namespaces())

		_, err := ctx.Store.LoadCredentials()
		assert.True(t, errors.Is(err, utils.MissingCredentials))
	})

	t.Run("all", func(t *testing.T) {
		ctx := &Context{Store: newStore(t), Out: &bytes.Buffer{}}
		require.NoError(t, ctx.Store.SaveCredentials("a@b.c", "k"))
		require.NoError(t, ctx.Store.Set("core", "verbosity", "debug"))

		require.NoError(t, (&ConfigClearCmd{All: true}).Run(ctx))
		assert.Empty(t, ctx.Store.Namespaces())
	})

	t.Run("nothing stored", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, (&ConfigClearCmd{}).Run(&Context{Store: newStore(t), Out: &out}))
		assert.Equal(t, "There were no credentials stored.\n", out.String())
	})
}
