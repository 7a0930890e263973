package msgbox

import (
	"fmt"
	"strconv"
	"strings"
)

// HWND is an opaque platform window handle. Zero means "no owner window".
type HWND uintptr

// Icon selects the icon shown in the dialog. Values are MB_ICON* style flags
// and occupy the 0x10-0x40 range.
type Icon uint32

const (
	IconNone        Icon = 0x00
	IconError       Icon = 0x10 // MB_ICONERROR
	IconQuestion    Icon = 0x20 // MB_ICONQUESTION
	IconWarning     Icon = 0x30 // MB_ICONWARNING
	IconInformation Icon = 0x40 // MB_ICONINFORMATION
)

var iconNames = map[Icon]string{
	IconNone:        "none",
	IconError:       "error",
	IconQuestion:    "question",
	IconWarning:     "warning",
	IconInformation: "information",
}

func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return "icon(" + strconv.FormatUint(uint64(i), 16) + ")"
}

func (i Icon) MarshalText() ([]byte, error) {
	name, ok := iconNames[i]
	if !ok {
		return nil, fmt.Errorf("unexpected icon: %#x", uint32(i))
	}
	return []byte(name), nil
}

func (i *Icon) UnmarshalText(text []byte) error {
	for v, name := range iconNames {
		if strings.EqualFold(string(text), name) {
			*i = v
			return nil
		}
	}
	return fmt.Errorf("unknown icon: %s", string(text))
}

// ParseIcon parses an icon name such as "warning" (case-insensitive).
func ParseIcon(s string) (Icon, error) {
	var i Icon
	err := i.UnmarshalText([]byte(s))
	return i, err
}

// Buttons selects the set of buttons shown in the dialog. Values are MB_*
// button style flags in the 0x0-0x6 range.
type Buttons uint32

const (
	ButtonsOK                Buttons = 0x0 // MB_OK
	ButtonsOKCancel          Buttons = 0x1 // MB_OKCANCEL
	ButtonsAbortRetryIgnore  Buttons = 0x2 // MB_ABORTRETRYIGNORE
	ButtonsYesNoCancel       Buttons = 0x3 // MB_YESNOCANCEL
	ButtonsYesNo             Buttons = 0x4 // MB_YESNO
	ButtonsRetryCancel       Buttons = 0x5 // MB_RETRYCANCEL
	ButtonsCancelTryContinue Buttons = 0x6 // MB_CANCELTRYCONTINUE
)

var buttonsNames = map[Buttons]string{
	ButtonsOK:                "ok",
	ButtonsOKCancel:          "ok-cancel",
	ButtonsAbortRetryIgnore:  "abort-retry-ignore",
	ButtonsYesNoCancel:       "yes-no-cancel",
	ButtonsYesNo:             "yes-no",
	ButtonsRetryCancel:       "retry-cancel",
	ButtonsCancelTryContinue: "cancel-try-continue",
}

// buttonResults lists the result codes of each button set in display order.
var buttonResults = map[Buttons][]Result{
	ButtonsOK:                {ResultOK},
	ButtonsOKCancel:          {ResultOK, ResultCancel},
	ButtonsAbortRetryIgnore:  {ResultAbort, ResultRetry, ResultIgnore},
	ButtonsYesNoCancel:       {ResultYes, ResultNo, ResultCancel},
	ButtonsYesNo:             {ResultYes, ResultNo},
	ButtonsRetryCancel:       {ResultRetry, ResultCancel},
	ButtonsCancelTryContinue: {ResultCancel, ResultTryAgain, ResultContinue},
}

func (b Buttons) String() string {
	if name, ok := buttonsNames[b]; ok {
		return name
	}
	return "buttons(" + strconv.FormatUint(uint64(b), 16) + ")"
}

func (b Buttons) MarshalText() ([]byte, error) {
	name, ok := buttonsNames[b]
	if !ok {
		return nil, fmt.Errorf("unexpected button set: %#x", uint32(b))
	}
	return []byte(name), nil
}

func (b *Buttons) UnmarshalText(text []byte) error {
	for v, name := range buttonsNames {
		if strings.EqualFold(string(text), name) {
			*b = v
			return nil
		}
	}
	return fmt.Errorf("unknown button set: %s", string(text))
}

// ParseButtons parses a button set name such as "yes-no" (case-insensitive).
func ParseButtons(s string) (Buttons, error) {
	var b Buttons
	err := b.UnmarshalText([]byte(s))
	return b, err
}

// Results returns the codes the button set can produce, in display order.
func (b Buttons) Results() []Result {
	return append([]Result(nil), buttonResults[b]...)
}

// Style combines an icon and a button set into the packed style value passed
// to the platform call. The two ranges never overlap, so the sum is unique
// for every pair.
func Style(icon Icon, buttons Buttons) uint32 {
	return uint32(icon) + uint32(buttons)
}

// splitStyle is the inverse of Style. Bits outside the icon and button ranges
// are dropped.
func splitStyle(style uint32) (Icon, Buttons) {
	return Icon(style & 0xf0), Buttons(style & 0x0f)
}

// Result identifies the button that dismissed the dialog.
type Result int32

const (
	ResultNone     Result = 0
	ResultOK       Result = 1  // IDOK
	ResultCancel   Result = 2  // IDCANCEL
	ResultAbort    Result = 3  // IDABORT
	ResultRetry    Result = 4  // IDRETRY
	ResultIgnore   Result = 5  // IDIGNORE
	ResultYes      Result = 6  // IDYES
	ResultNo       Result = 7  // IDNO
	ResultTryAgain Result = 10 // IDTRYAGAIN
	ResultContinue Result = 11 // IDCONTINUE
)

var resultNames = map[Result]string{
	ResultNone:     "none",
	ResultOK:       "ok",
	ResultCancel:   "cancel",
	ResultAbort:    "abort",
	ResultRetry:    "retry",
	ResultIgnore:   "ignore",
	ResultYes:      "yes",
	ResultNo:       "no",
	ResultTryAgain: "try-again",
	ResultContinue: "continue",
}

// DecodeResult maps a platform return code onto a Result. Unrecognized codes,
// including the zero returned when the dialog could not be shown, decode to
// ResultNone.
func DecodeResult(code int32) Result {
	r := Result(code)
	if _, ok := resultNames[r]; ok {
		return r
	}
	return ResultNone
}

// Affirmative reports whether the result keeps the user's workflow moving
// forward: OK, Continue, Retry, TryAgain and Yes.
func (r Result) Affirmative() bool {
	switch r {
	case ResultOK, ResultContinue, ResultRetry, ResultTryAgain, ResultYes:
		return true
	default:
		return false
	}
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return strconv.FormatInt(int64(r), 10)
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Result) UnmarshalText(text []byte) error {
	for v, name := range resultNames {
		if strings.EqualFold(string(text), name) {
			*r = v
			return nil
		}
	}
	return fmt.Errorf("unknown result: %s", string(text))
}
