// Package platform holds the raw operating system calls behind the msgbox
// package.
//
// Only Windows has a real implementation. On other platforms every call is a
// stub that reports failure the same way the Windows call does, so callers
// never need build tags of their own.
//
// # Example Usage
//
//	text, _ := windows.UTF16PtrFromString("Continue?")
//	caption, _ := windows.UTF16PtrFromString("Setup")
//	code := platform.MessageBox(0, text, caption, 0x24) // MB_YESNO | MB_ICONQUESTION
//	if code == 6 { // IDYES
//	    // ...
//	}
package platform
