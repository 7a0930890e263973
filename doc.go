/*
Package msgbox shows native modal message boxes with a fluent builder API.

A MessageBox collects an owner window, a title, a message, an icon and a
button set, then displays the dialog through a Host and reports whether the
user pressed an affirmative button.

# Basic Usage

	msgbox.New().
		WithTitle("Setup").
		WithMessage("Installation complete.").
		WithIcon(msgbox.IconInformation).
		Show()

	msgbox.New().
		WithTitle("Setup").
		WithMessage("Overwrite the existing installation?").
		WithIcon(msgbox.IconQuestion).
		WithButtons(msgbox.ButtonsYesNo).
		ShowWithCallback(func(yes bool) {
			if yes {
				overwrite()
			}
		})

Each With* call returns a copy, so a configured MessageBox can be kept and
shown again, or used as the base for variants.

# Results

The affirmative buttons are OK, Yes, Retry, Try Again and Continue. Every
other button, and any code the platform returns that is not a known button,
counts as not affirmative. A dialog that failed to display cannot be told
apart from one the user declined.

# Hosts

The default host calls MessageBoxW on Windows and shows nothing elsewhere.
WithHost swaps in another Host: TerminalHost asks on a terminal, and on
Windows WebframeHost uses the webframe dialog helpers. Tests can supply a
HostFunc that returns canned codes.
*/
package msgbox
