//go:build windows

package platform

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procMessageBox = user32.NewProc("MessageBoxW")
)

// MessageBox calls MessageBoxW and returns its result code. It blocks until
// the dialog is dismissed. Zero is returned if the dialog could not be shown,
// including when user32.dll or MessageBoxW cannot be loaded.
//
// text and caption must point to NUL-terminated UTF-16 strings.
func MessageBox(owner uintptr, text, caption *uint16, style uint32) int32 {
	if err := procMessageBox.Find(); err != nil {
		return 0
	}

	// The dialog runs a message loop on the calling thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	r, _, _ := procMessageBox.Call(
		owner,
		uintptr(unsafe.Pointer(text)),
		uintptr(unsafe.Pointer(caption)),
		uintptr(style),
	)
	return int32(r)
}
