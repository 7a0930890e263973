package msgbox

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Host displays a modal message box and blocks until it is dismissed.
//
// text and caption are NUL-terminated UTF-16 buffers. style is the packed
// icon and button set value (see Style). The return value is the platform
// code of the pressed button, or any unrecognized value (usually 0) if the
// dialog could not be shown.
type Host interface {
	MessageBox(owner HWND, text, caption []uint16, style uint32) int32
}

// HostFunc adapts an ordinary function to the Host interface.
type HostFunc func(owner HWND, text, caption []uint16, style uint32) int32

func (f HostFunc) MessageBox(owner HWND, text, caption []uint16, style uint32) int32 {
	return f(owner, text, caption, style)
}

// ErrUnknownHost is returned by LookupHost for a name that is not registered
// on the current platform.
var ErrUnknownHost = errors.New("unknown message box host")

var (
	hostsMu sync.RWMutex
	hosts   = map[string]func() Host{
		"native":   func() Host { return nativeHost{} },
		"terminal": func() Host { return NewTerminalHost() },
	}
)

func registerHost(name string, factory func() Host) {
	hostsMu.Lock()
	defer hostsMu.Unlock()
	hosts[name] = factory
}

// LookupHost returns a new host by name: "native", "terminal", and on
// Windows "webframe".
func LookupHost(name string) (Host, error) {
	hostsMu.RLock()
	factory, ok := hosts[name]
	hostsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHost, name)
	}
	return factory(), nil
}

// HostNames returns the registered host names in sorted order.
func HostNames() []string {
	hostsMu.RLock()
	defer hostsMu.RUnlock()
	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultHost returns the platform's native host.
func DefaultHost() Host {
	return nativeHost{}
}
