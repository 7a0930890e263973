//go:build !windows

package platform

// MessageBox is a stub on non-Windows platforms. It shows nothing and returns
// zero, which callers treat the same as a dialog that failed to display.
func MessageBox(owner uintptr, text, caption *uint16, style uint32) int32 {
	return 0
}
