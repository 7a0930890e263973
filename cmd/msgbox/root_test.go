package main

import (
	"bytes"
	"testing"

	"github.com/crafted-tech/msgbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	owner msgbox.HWND
	style uint32
}

func stubHost(t *testing.T, code int32) *[]recordedCall {
	t.Helper()
	var calls []recordedCall
	prev := lookupHost
	lookupHost = func(name string) (msgbox.Host, error) {
		if name != "native" {
			return prev(name)
		}
		return msgbox.HostFunc(func(owner msgbox.HWND, text, caption []uint16, style uint32) int32 {
			calls = append(calls, recordedCall{owner: owner, style: style})
			return code
		}), nil
	}
	t.Cleanup(func() { lookupHost = prev })
	return &calls
}

func execute(args ...string) (string, error) {
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootAffirmative(t *testing.T) {
	calls := stubHost(t, int32(msgbox.ResultYes))
	out, err := execute("--buttons", "yes-no", "--icon", "question", "--owner", "42")
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)
	require.Len(t, *calls, 1)
	assert.Equal(t, recordedCall{owner: 42, style: 0x24}, (*calls)[0])
}

func TestRootDeclined(t *testing.T) {
	stubHost(t, int32(msgbox.ResultNo))
	out, err := execute("-b", "yes-no")
	assert.ErrorIs(t, err, errDeclined)
	assert.Equal(t, "no\n", out)
}

func TestRootUnrecognizedCode(t *testing.T) {
	stubHost(t, 999)
	out, err := execute()
	assert.ErrorIs(t, err, errDeclined)
	assert.Equal(t, "none\n", out)
}

func TestRootConfigFileWithOverride(t *testing.T) {
	calls := stubHost(t, int32(msgbox.ResultRetry))
	path := writeConfig(t, "icon: error\nbuttons: retry-cancel\n")
	out, err := execute("--config", path, "--icon", "warning")
	require.NoError(t, err)
	assert.Equal(t, "retry\n", out)
	require.Len(t, *calls, 1)
	assert.Equal(t, uint32(0x35), (*calls)[0].style)
}

func TestRootErrors(t *testing.T) {
	stubHost(t, 1)

	_, err := execute("--icon", "skull")
	assert.EqualError(t, err, "unknown icon: skull")

	_, err = execute("--host", "carrier-pigeon")
	assert.ErrorIs(t, err, msgbox.ErrUnknownHost)

	_, err = execute("extra")
	assert.Error(t, err)
}
