package main

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/crafted-tech/msgbox"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dialog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadDialogConfigDefaults(t *testing.T) {
	conf, err := loadDialogConfig("")
	require.NoError(t, err)
	assert.Equal(t, dialogConfig{
		Title:   "No Title",
		Message: "No Description",
		Icon:    "none",
		Buttons: "ok",
		Host:    "native",
	}, conf)
}

func TestLoadDialogConfigFile(t *testing.T) {
	path := writeConfig(t, `
title: Setup
message: |
  Overwrite the existing installation?
icon: question
buttons: yes-no
owner: 4660
`)
	conf, err := loadDialogConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Setup", conf.Title)
	assert.Equal(t, "Overwrite the existing installation?\n", conf.Message)
	assert.Equal(t, "question", conf.Icon)
	assert.Equal(t, "yes-no", conf.Buttons)
	assert.Equal(t, uint64(4660), conf.Owner)
	assert.Equal(t, "native", conf.Host)
}

func TestLoadDialogConfigErrors(t *testing.T) {
	_, err := loadDialogConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loadDialogConfig(writeConfig(t, "title: [unterminated"))
	assert.Error(t, err)
}

func TestMergeOnlyChangedFlags(t *testing.T) {
	var flags dialogConfig
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.StringVar(&flags.Title, "title", "No Title", "")
	f.StringVar(&flags.Message, "message", "No Description", "")
	f.StringVar(&flags.Icon, "icon", "none", "")
	f.StringVar(&flags.Buttons, "buttons", "ok", "")
	f.Uint64Var(&flags.Owner, "owner", 0, "")
	f.StringVar(&flags.Host, "host", "native", "")
	require.NoError(t, f.Parse([]string{"--title", "From flag", "--owner", "0x10"}))

	conf := dialogConfig{Title: "From file", Message: "Kept", Icon: "warning", Buttons: "yes-no", Host: "terminal"}
	conf.merge(f, &flags)

	assert.Equal(t, dialogConfig{
		Title:   "From flag",
		Message: "Kept",
		Icon:    "warning",
		Buttons: "yes-no",
		Owner:   16,
		Host:    "terminal",
	}, conf)
}

func TestDialogConfigMessageBox(t *testing.T) {
	conf := dialogConfig{Title: "T", Message: "M", Icon: "error", Buttons: "retry-cancel", Owner: 7}
	box, err := conf.messageBox(msgbox.HostFunc(func(msgbox.HWND, []uint16, []uint16, uint32) int32 { return 0 }))
	require.NoError(t, err)
	assert.Equal(t, msgbox.HWND(7), box.Owner())
	assert.Equal(t, "T", box.Title())
	assert.Equal(t, "M", box.Message())
	assert.Equal(t, msgbox.IconError, box.Icon())
	assert.Equal(t, msgbox.ButtonsRetryCancel, box.Buttons())

	conf.Icon = "skull"
	_, err = conf.messageBox(nil)
	assert.EqualError(t, err, "unknown icon: skull")

	conf.Icon = "none"
	conf.Buttons = "maybe"
	_, err = conf.messageBox(nil)
	assert.EqualError(t, err, "unknown button set: maybe")
}

func TestOwnerHandle(t *testing.T) {
	h, err := ownerHandle(math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, msgbox.HWND(math.MaxUint32), h)

	_, err = ownerHandle(math.MaxUint32 + 1)
	if strconv.IntSize == 32 {
		assert.EqualError(t, err, "owner handle 0x100000000 does not fit in 32 bits")
	} else {
		assert.NoError(t, err)
	}

	conf := defaultDialogConfig()
	conf.Owner = math.MaxUint64
	_, err = conf.messageBox(nil)
	if strconv.IntSize == 32 {
		assert.Error(t, err)
	} else {
		assert.NoError(t, err)
	}
}
