package msgbox

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/crafted-tech/msgbox/platform"
)

// unsupportedWarning guards the one-time warning logged when the native host
// is used where no native dialog exists.
var unsupportedWarning = new(sync.Once)

// nativeHost shows the dialog with the operating system's MessageBoxW.
// Outside Windows it shows nothing, returns 0 and logs a warning once.
type nativeHost struct{}

func (nativeHost) MessageBox(owner HWND, text, caption []uint16, style uint32) int32 {
	if runtime.GOOS != "windows" {
		unsupportedWarning.Do(func() {
			slog.Default().Warn("native message box is not available on this platform",
				slog.String("os", runtime.GOOS))
		})
	}
	if len(text) == 0 {
		text = encodeUTF16("")
	}
	if len(caption) == 0 {
		caption = encodeUTF16("")
	}
	return platform.MessageBox(uintptr(owner), &text[0], &caption[0], style)
}
