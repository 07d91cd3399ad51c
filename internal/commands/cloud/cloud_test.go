/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cloud

import (
	"bytes"
	"errors"
	"testing"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/commands"
	mock "github.com/combahton/cbcli/internal/mocks"
	"github.com/combahton/cbcli/internal/presenter"
	"github.com/combahton/cbcli/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type answer struct {
	yes    bool
	asked  int
	prompt string
}

func (a *answer) Confirm(prompt string) (bool, error) {
	a.asked++
	a.prompt = prompt

	return a.yes, nil
}

func withAnswer(t *testing.T, yes bool) *answer {
	t.Helper()

	a := &answer{yes: yes}
	original := utils.Prompt
	utils.Prompt = a

	t.Cleanup(func() { utils.Prompt = original })

	return a
}

func respond(t *testing.T, body, target string) *api.Response {
	t.Helper()

	outcome, err := api.Classify([]byte(body), target)
	require.NoError(t, err)

	return &api.Response{Body: []byte(body), Outcome: outcome}
}

func setup(t *testing.T) (*commands.Context, *mock.MockCaller, *bytes.Buffer) {
	t.Helper()

	caller := mock.NewMockCaller(gomock.NewController(t))
	out := &bytes.Buffer{}

	return &commands.Context{Client: caller, Out: out, Presenter: presenter.New(out)}, caller, out
}

func serverCall(action string) api.Call {
	return api.Call{Component: "cloud", Method: "server", Action: action, Params: api.Params{"id": "4711"}, Target: "4711"}
}

func TestServerPowerCmds(t *testing.T) {
	withAnswer(t, true)

	tests := []struct {
		action string
		cmd    interface{ Run(*commands.Context) error }
	}{
		{"start", &ServerStartCmd{ServerArg: ServerArg{ID: "4711"}}},
		{"stop", &ServerStopCmd{ServerArg: ServerArg{ID: "4711"}}},
		{"reset", &ServerResetCmd{ServerArg: ServerArg{ID: "4711"}}},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			ctx, caller, out := setup(t)

			caller.EXPECT().Call(gomock.Any(), serverCall(tt.action)).Return(respond(t, `{"success":true}`, "4711"), nil)

			require.NoError(t, tt.cmd.Run(ctx))
			assert.Equal(t, "OK\n", out.String())
		})

		t.Run(tt.action+" failed", func(t *testing.T) {
			ctx, caller, out := setup(t)

			caller.EXPECT().Call(gomock.Any(), serverCall(tt.action)).Return(respond(t, `{"success":false}`, "4711"), nil)

			err := tt.cmd.Run(ctx)
			assert.True(t, errors.Is(err, utils.OperationFailed))
			assert.Contains(t, err.Error(), "failed to "+tt.action+" server 4711")
			assert.Empty(t, out.String())
		})
	}
}

func TestServerResetCmd_Declined(t *testing.T) {
	a := withAnswer(t, false)
	ctx, _, _ := setup(t)

	err := (&ServerResetCmd{ServerArg: ServerArg{ID: "4711"}}).Run(ctx)

	assert.True(t, errors.Is(err, utils.OperationAborted))
	assert.Equal(t, 1, a.asked)
}

func TestServerResetCmd_YesSkipsPrompt(t *testing.T) {
	a := withAnswer(t, false)
	ctx, caller, _ := setup(t)

	caller.EXPECT().Call(gomock.Any(), serverCall("reset")).Return(respond(t, `{"success":true}`, "4711"), nil)

	require.NoError(t, (&ServerResetCmd{ServerArg: ServerArg{ID: "4711"}, Yes: true}).Run(ctx))
	assert.Zero(t, a.asked)
}

func TestServerViewCmd(t *testing.T) {
	ctx, caller, out := setup(t)

	caller.EXPECT().Call(gomock.Any(), serverCall("view")).
		Return(respond(t, `{"id":4711,"hostname":"web01","state":"running","ips":["192.0.2.5"]}`, "4711"), nil)

	require.NoError(t, (&ServerViewCmd{ServerArg: ServerArg{ID: "4711"}}).Run(ctx))
	assert.Equal(t, ""+
		"id        4711\n"+
		"hostname  web01\n"+
		"state     running\n"+
		"ips       [\"192.0.2.5\"]\n", out.String())
}

func TestServerViewCmd_StatusFieldIsData(t *testing.T) {
	ctx, caller, out := setup(t)

	caller.EXPECT().Call(gomock.Any(), serverCall("view")).
		Return(respond(t, `{"id":"4711","status":"running","ip":"192.0.2.5"}`, "4711"), nil)

	require.NoError(t, (&ServerViewCmd{ServerArg: ServerArg{ID: "4711"}}).Run(ctx))
	assert.Equal(t, ""+
		"id      4711\n"+
		"status  running\n"+
		"ip      192.0.2.5\n", out.String())
}

func TestServerVNCCmd_AccessDenied(t *testing.T) {
	ctx, caller, out := setup(t)

	caller.EXPECT().Call(gomock.Any(), serverCall("vnc")).Return(respond(t, `{"status":"id_unauthenticated"}`, "4711"), nil)

	err := (&ServerVNCCmd{ServerArg: ServerArg{ID: "4711"}}).Run(ctx)
	assert.True(t, errors.Is(err, utils.AccessDenied))
	assert.Equal(t, "Access denied: You are not allowed to modify 4711\n", out.String())
}

func TestServerArg_Empty(t *testing.T) {
	ctx, _, _ := setup(t)

	err := (&ServerViewCmd{ServerArg: ServerArg{ID: "  "}}).Run(ctx)
	assert.True(t, errors.Is(err, utils.InvalidUserInput))
}

func TestReinstallTemplatesCmd(t *testing.T) {
	ctx, caller, out := setup(t)

	caller.EXPECT().Call(gomock.Any(), api.Call{
		Component: "cloud",
		Method:    "reinstall",
		Action:    "templates",
		Params:    api.Params{"id": "4711"},
		Target:    "4711",
	}).Return(respond(t, `[{"id":"debian-12","name":"Debian 12"},{"id":"ubuntu-24.04","name":"Ubuntu 24.04"}]`, "4711"), nil)

	require.NoError(t, (&ReinstallTemplatesCmd{ServerArg: ServerArg{ID: "4711"}}).Run(ctx))
	assert.Equal(t, ""+
		"id            name\n"+
		"--            ----\n"+
		"debian-12     Debian 12\n"+
		"ubuntu-24.04  Ubuntu 24.04\n", out.String())
}

func TestReinstallRunCmd(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		output  string
		failure string
	}{
		{"started", `{"status":"reinstall_started"}`, "Reinstallation started\n", ""},
		{"already running", `{"status":"id_reinstalling"}`, "", "Server is currently being reinstalled"},
		{"unknown token", `{"status":"disk_locked"}`, "", "disk_locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := withAnswer(t, true)
			ctx, caller, out := setup(t)

			caller.EXPECT().Call(gomock.Any(), api.Call{
				Component: "cloud",
				Method:    "reinstall",
				Action:    "run",
				Params:    api.Params{"id": "4711", "template": "debian-12"},
				Target:    "4711",
			}).Return(respond(t, tt.body, "4711"), nil)

			err := (&ReinstallRunCmd{ServerArg: ServerArg{ID: "4711"}, Template: "debian-12"}).Run(ctx)
			if tt.failure != "" {
				assert.True(t, errors.Is(err, utils.OperationFailed))
				assert.Contains(t, err.Error(), tt.failure)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.output, out.String())
			assert.Contains(t, a.prompt, "debian-12")
		})
	}
}

func TestReinstallRunCmd_Declined(t *testing.T) {
	withAnswer(t, false)
	ctx, _, _ := setup(t)

	err := (&ReinstallRunCmd{ServerArg: ServerArg{ID: "4711"}, Template: "debian-12"}).Run(ctx)
	assert.True(t, errors.Is(err, utils.OperationAborted))
}
