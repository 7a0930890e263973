package msgbox

import "log/slog"

const (
	defaultTitle   = "No Title"
	defaultMessage = "No Description"
)

// MessageBox describes a modal message box. Values are immutable: every With*
// method returns a modified copy and leaves the receiver untouched, so a
// configured MessageBox can be shown any number of times.
type MessageBox struct {
	owner   HWND
	title   string
	message string
	icon    Icon
	buttons Buttons

	host   Host
	logger *slog.Logger
}

// New returns a MessageBox with no owner, the "No Title" caption, the
// "No Description" message, no icon and a single OK button.
func New() *MessageBox {
	return &MessageBox{
		title:   defaultTitle,
		message: defaultMessage,
		icon:    IconNone,
		buttons: ButtonsOK,
	}
}

// WithOwner returns a copy owned by the given window. Zero means no owner.
func (m *MessageBox) WithOwner(owner HWND) *MessageBox {
	mb := *m
	mb.owner = owner
	return &mb
}

// WithTitle returns a copy with the given title bar text.
func (m *MessageBox) WithTitle(title string) *MessageBox {
	mb := *m
	mb.title = title
	return &mb
}

// WithMessage returns a copy with the given body text.
func (m *MessageBox) WithMessage(message string) *MessageBox {
	mb := *m
	mb.message = message
	return &mb
}

// WithIcon returns a copy showing the given icon.
func (m *MessageBox) WithIcon(icon Icon) *MessageBox {
	mb := *m
	mb.icon = icon
	return &mb
}

// WithButtons returns a copy showing the given button set.
func (m *MessageBox) WithButtons(buttons Buttons) *MessageBox {
	mb := *m
	mb.buttons = buttons
	return &mb
}

// WithHost returns a copy that displays through h instead of DefaultHost.
// A nil host restores the default.
func (m *MessageBox) WithHost(h Host) *MessageBox {
	mb := *m
	mb.host = h
	return &mb
}

// WithLogger returns a copy that logs host exchanges to l at debug level.
// A nil logger restores slog.Default.
func (m *MessageBox) WithLogger(l *slog.Logger) *MessageBox {
	mb := *m
	mb.logger = l
	return &mb
}

// Owner returns the owner window handle, zero if the dialog has no owner.
func (m *MessageBox) Owner() HWND { return m.owner }

// Title returns the title bar text.
func (m *MessageBox) Title() string { return m.title }

// Message returns the body text.
func (m *MessageBox) Message() string { return m.message }

// Icon returns the icon shown in the dialog.
func (m *MessageBox) Icon() Icon { return m.icon }

// Buttons returns the button set shown in the dialog.
func (m *MessageBox) Buttons() Buttons { return m.buttons }

// Style returns the packed style value passed to the host.
func (m *MessageBox) Style() uint32 {
	return Style(m.icon, m.buttons)
}

// Show displays the dialog and blocks until it is dismissed.
// Whether the platform failed to display it is not reported.
func (m *MessageBox) Show() {
	m.invoke()
}

// ShowWithCallback displays the dialog, blocks until it is dismissed and then
// calls fn exactly once on the calling goroutine with true if an affirmative
// button (OK, Yes, Retry, Try Again, Continue) was pressed.
func (m *MessageBox) ShowWithCallback(fn func(affirmative bool)) {
	ok := m.invoke()
	if fn != nil {
		fn(ok)
	}
}

func (m *MessageBox) invoke() bool {
	host := m.host
	if host == nil {
		host = DefaultHost()
	}
	log := m.logger
	if log == nil {
		log = slog.Default()
	}

	style := m.Style()
	code := host.MessageBox(m.owner, encodeUTF16(m.message), encodeUTF16(m.title), style)
	result := DecodeResult(code)

	log.Debug("message box dismissed",
		slog.String("title", m.title),
		slog.Any("icon", m.icon),
		slog.Any("buttons", m.buttons),
		slog.Int64("code", int64(code)),
		slog.Any("result", result),
	)
	if result == ResultNone {
		log.Debug("message box returned no recognized button", slog.Int64("code", int64(code)))
	}
	return result.Affirmative()
}
