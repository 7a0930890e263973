package msgbox

// webframeKind names the webframe dialog helper used for a style.
type webframeKind int

const (
	webframeNone webframeKind = iota
	webframeInfo
	webframeWarning
	webframeError
	webframeConfirm
)

// webframeDialog is how a style is shown with webframe's helpers, which only
// offer single-button dialogs and a two-button confirmation.
type webframeDialog struct {
	kind    webframeKind
	accept  Result // confirmed, or the only button
	decline Result // declined or closed
}

// webframeDialogFor maps a style onto a webframe dialog. The OK set uses the
// single-button dialog matching the icon. Every other set becomes a
// confirmation: accepting yields the set's first affirmative button and
// declining its Cancel, No or Abort button.
func webframeDialogFor(style uint32) webframeDialog {
	icon, buttons := splitStyle(style)
	results := buttonResults[buttons]
	if len(results) == 0 {
		return webframeDialog{kind: webframeNone}
	}

	if buttons == ButtonsOK {
		kind := webframeInfo
		switch icon {
		case IconError:
			kind = webframeError
		case IconWarning:
			kind = webframeWarning
		}
		return webframeDialog{kind: kind, accept: ResultOK, decline: ResultOK}
	}

	d := webframeDialog{kind: webframeConfirm}
	for _, r := range results {
		if r.Affirmative() {
			d.accept = r
			break
		}
	}
	for _, want := range []Result{ResultCancel, ResultNo, ResultAbort} {
		for _, r := range results {
			if r == want && d.decline == ResultNone {
				d.decline = r
			}
		}
	}
	return d
}
