package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/crafted-tech/msgbox"
	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

type dialogConfig struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Icon    string `yaml:"icon"`
	Buttons string `yaml:"buttons"`
	Owner   uint64 `yaml:"owner"`
	Host    string `yaml:"host"`
}

func defaultDialogConfig() dialogConfig {
	m := msgbox.New()
	return dialogConfig{
		Title:   m.Title(),
		Message: m.Message(),
		Icon:    m.Icon().String(),
		Buttons: m.Buttons().String(),
		Host:    "native",
	}
}

// loadDialogConfig reads a YAML dialog description over the defaults.
// An empty path yields the defaults.
func loadDialogConfig(path string) (dialogConfig, error) {
	conf := defaultDialogConfig()
	if path == "" {
		return conf, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return conf, fmt.Errorf("parse config %s: %w", path, err)
	}
	return conf, nil
}

// merge overrides conf with the values of the flags that were set explicitly.
func (conf *dialogConfig) merge(f *pflag.FlagSet, flags *dialogConfig) {
	if f.Changed("title") {
		conf.Title = flags.Title
	}
	if f.Changed("message") {
		conf.Message = flags.Message
	}
	if f.Changed("icon") {
		conf.Icon = flags.Icon
	}
	if f.Changed("buttons") {
		conf.Buttons = flags.Buttons
	}
	if f.Changed("owner") {
		conf.Owner = flags.Owner
	}
	if f.Changed("host") {
		conf.Host = flags.Host
	}
}

func (conf *dialogConfig) messageBox(host msgbox.Host) (*msgbox.MessageBox, error) {
	icon, err := msgbox.ParseIcon(conf.Icon)
	if err != nil {
		return nil, err
	}
	buttons, err := msgbox.ParseButtons(conf.Buttons)
	if err != nil {
		return nil, err
	}
	owner, err := ownerHandle(conf.Owner)
	if err != nil {
		return nil, err
	}
	return msgbox.New().
		WithOwner(owner).
		WithTitle(conf.Title).
		WithMessage(conf.Message).
		WithIcon(icon).
		WithButtons(buttons).
		WithHost(host), nil
}

// ownerHandle converts a configured handle, rejecting values that do not fit
// in a pointer on this platform.
func ownerHandle(v uint64) (msgbox.HWND, error) {
	if uint64(uintptr(v)) != v {
		return 0, fmt.Errorf("owner handle %#x does not fit in %d bits", v, strconv.IntSize)
	}
	return msgbox.HWND(v), nil
}
