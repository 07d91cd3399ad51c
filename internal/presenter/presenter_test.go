/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package presenter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routing = Vocabulary{
	"routing_changed": {Level: log.InfoLevel, Text: "OK"},
	"exists":          {Level: log.WarnLevel, Text: "Domain already exists"},
	"id_reinstalling": {Level: log.ErrorLevel, Text: "Server is currently being reinstalled"},
}

func classified(t *testing.T, body, target string) *api.Response {
	t.Helper()

	outcome, err := api.Classify([]byte(body), target)
	require.NoError(t, err)

	return &api.Response{Body: []byte(body), Outcome: outcome}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	oldOut, oldLevel := log.StandardLogger().Out, log.GetLevel()

	t.Cleanup(func() {
		log.SetOutput(oldOut)
		log.SetLevel(oldLevel)
	})

	log.SetOutput(&buf)
	log.SetLevel(log.InfoLevel)

	return &buf
}

func TestPresent_AccessDenied(t *testing.T) {
	var out bytes.Buffer

	logs := captureLog(t)

	err := New(&out).Present(classified(t, `{"status":"id_unauthenticated"}`, "127.0.0.1"), View{Statuses: routing})

	assert.True(t, errors.Is(err, utils.AccessDenied))
	assert.Contains(t, err.Error(), "127.0.0.1")
	assert.Equal(t, "Access denied: You are not allowed to modify 127.0.0.1\n", out.String())
	assert.Contains(t, logs.String(), "level=error")
	assert.Contains(t, logs.String(), "access denied for 127.0.0.1")
}

func TestPresent_AccessDeniedWinsOverDetails(t *testing.T) {
	var out bytes.Buffer

	captureLog(t)

	err := New(&out).Present(classified(t, `{"status":"id_unauthenticated","id":"4711"}`, "4711"), View{})

	assert.True(t, errors.Is(err, utils.AccessDenied))
	assert.Equal(t, "Access denied: You are not allowed to modify 4711\n", out.String())
}

func TestPresent_StatusFieldInRecord(t *testing.T) {
	body := `{"id":"4711","status":"running","ip":"192.0.2.10"}`

	for name, vocabulary := range map[string]Vocabulary{"no vocabulary": nil, "unmapped token": routing} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer

			require.NoError(t, New(&out).Present(classified(t, body, ""), View{Statuses: vocabulary}))

			assert.Equal(t, ""+
				"id      4711\n"+
				"status  running\n"+
				"ip      192.0.2.10\n", out.String())
		})
	}
}

func TestPresent_MappedStatusWithDetails(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New(&out).Present(classified(t, `{"status":"routing_changed","ipaddr":"192.0.2.1"}`, ""), View{Statuses: routing}))
	assert.Equal(t, "OK\n", out.String())
}

func TestPresent_StatusCode(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		output    string
		expectErr error
		errText   string
	}{
		{"mapped info", `{"status":"routing_changed"}`, "OK\n", nil, ""},
		{"mapped warn", `{"status":"exists"}`, "", nil, ""},
		{"mapped error", `{"status":"id_reinstalling"}`, "", utils.OperationFailed, "Server is currently being reinstalled"},
		{"unmapped", `{"status":"quota_exceeded"}`, "", utils.OperationFailed, "quota_exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := New(&out).Present(classified(t, tt.body, ""), View{Statuses: routing})
			if tt.expectErr != nil {
				assert.True(t, errors.Is(err, tt.expectErr))
				assert.Contains(t, err.Error(), tt.errText)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.output, out.String())
		})
	}
}

func TestPresent_UnmappedWithoutVocabulary(t *testing.T) {
	err := New(&bytes.Buffer{}).Present(classified(t, `{"status":"added"}`, ""), View{})
	assert.True(t, errors.Is(err, utils.OperationFailed))
	assert.Equal(t, "OperationFailed: added", err.Error())
}

func TestPresent_BooleanResult(t *testing.T) {
	var out bytes.Buffer

	p := New(&out)

	require.NoError(t, p.Present(classified(t, `{"success":true}`, ""), View{Operation: "start server 42"}))
	assert.Equal(t, "OK\n", out.String())

	err := p.Present(classified(t, `{"success":false}`, ""), View{Operation: "start server 42"})
	assert.True(t, errors.Is(err, utils.OperationFailed))
	assert.Contains(t, err.Error(), "failed to start server 42")

	err = p.Present(classified(t, `{"success":false}`, ""), View{})
	assert.Contains(t, err.Error(), "complete the operation")
}

func TestPresent_RecordObject(t *testing.T) {
	var out bytes.Buffer

	body := `{"ipaddr":"10.0.0.1","l4_routing":"dynamic","l7":false,"mitigations":3,"tags":["a","b"]}`

	require.NoError(t, New(&out).Present(classified(t, body, ""), View{}))

	assert.Equal(t, ""+
		"ipaddr       10.0.0.1\n"+
		"l4_routing   dynamic\n"+
		"l7           false\n"+
		"mitigations  3\n"+
		"tags         [\"a\",\"b\"]\n", out.String())
}

func TestPresent_RecordList(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New(&out).Present(classified(t, `[{"id":"1","name":"a"},{"id":"2","name":"b"}]`, ""), View{}))

	assert.Equal(t, ""+
		"id  name\n"+
		"--  ----\n"+
		"1   a\n"+
		"2   b\n", out.String())
}

func TestPresent_RecordListUnionOfKeys(t *testing.T) {
	var out bytes.Buffer

	body := `[{"id":"1","name":"a"},{"id":"2","extra":"x","name":"b"}]`

	require.NoError(t, New(&out).Present(classified(t, body, ""), View{}))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "id  name  extra", string(lines[0]))
	assert.Equal(t, "1   a", string(bytes.TrimRight(lines[2], " ")))
	assert.Equal(t, "2   b     x", string(lines[3]))
}

func TestPresent_RecordScalarsAndEmpty(t *testing.T) {
	tests := []struct {
		body   string
		output string
	}{
		{`["a","b"]`, "a\nb\n"},
		{`42`, "42\n"},
		{`"done"`, "done\n"},
		{`[]`, ""},
		{`{}`, ""},
		{`null`, ""},
		{``, ""},
	}

	for _, tt := range tests {
		var out bytes.Buffer

		require.NoError(t, New(&out).Present(classified(t, tt.body, ""), View{}), tt.body)
		assert.Equal(t, tt.output, out.String(), tt.body)
	}
}

func TestPresent_RawBypassesClassification(t *testing.T) {
	bodies := []string{
		`{"status":"id_unauthenticated"}`,
		`{"success":false}`,
		`[{"id":"1","name":"a"}]`,
		`{"status":"quota_exceeded"}`,
		"{\"a\":1}\n",
	}

	for _, body := range bodies {
		var out bytes.Buffer

		err := New(&out).Present(classified(t, body, "127.0.0.1"), View{Raw: true, Statuses: routing})
		require.NoError(t, err, body)

		expected := body
		if expected[len(expected)-1] != '\n' {
			expected += "\n"
		}

		assert.Equal(t, expected, out.String())
	}
}

func TestPresent_MissingOutcome(t *testing.T) {
	err := New(&bytes.Buffer{}).Present(&api.Response{Body: []byte("<html>")}, View{})
	assert.True(t, errors.Is(err, utils.MalformedResponse))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "x", FormatValue("x"))
	assert.Equal(t, `{"a":1}`, FormatValue(&api.Object{Keys: []string{"a"}, Values: map[string]any{"a": 1}}))
}

func TestPresent_MultilineValuesStayOnTheirRow(t *testing.T) {
	var out bytes.Buffer

	body := `{"domain":"example.com","cert":"-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n"}`

	require.NoError(t, New(&out).Present(classified(t, body, ""), View{}))

	assert.Equal(t, ""+
		"domain  example.com\n"+
		`cert    -----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n`+"\n", out.String())

	out.Reset()

	require.NoError(t, New(&out).Present(classified(t, `[{"id":"1","note":"a\tb"},{"id":"2","note":"c\r\nd"}]`, ""), View{}))

	assert.Equal(t, ""+
		"id  note\n"+
		"--  ----\n"+
		`1   a\tb`+"\n"+
		`2   c\nd`+"\n", out.String())
}

func TestCell(t *testing.T) {
	assert.Equal(t, `a\nb`, Cell("a\nb"))
	assert.Equal(t, `a\tb`, Cell("a\tb"))
	assert.Equal(t, `a\rb`, Cell("a\rb"))
	assert.Equal(t, "plain", Cell("plain"))
	assert.Equal(t, "a\nb", FormatValue("a\nb"))
}
