//go:build windows

package msgbox

import "github.com/crafted-tech/webframe"

func init() {
	registerHost("webframe", func() Host { return WebframeHost{} })
}

// WebframeHost shows the dialog with webframe's native dialog helpers.
// It is safe to use before any webframe window exists.
//
// webframe only offers OK/Cancel confirmation and single-button dialogs.
// ButtonsOK uses the single-button dialog for the icon. Every other button set
// is asked as a confirmation whose OK and Cancel stand for the set's
// affirmative and declining buttons. The owner handle is ignored.
type WebframeHost struct{}

func (WebframeHost) MessageBox(owner HWND, text, caption []uint16, style uint32) int32 {
	title := decodeUTF16(caption)
	message := decodeUTF16(text)

	d := webframeDialogFor(style)
	switch d.kind {
	case webframeConfirm:
		if webframe.ShowConfirmDialog(title, message) {
			return int32(d.accept)
		}
		return int32(d.decline)
	case webframeError:
		webframe.ShowErrorDialog(title, message)
	case webframeWarning:
		webframe.ShowWarningDialog(title, message)
	case webframeInfo:
		webframe.ShowInfoDialog(title, message)
	default:
		return 0
	}
	return int32(d.accept)
}
