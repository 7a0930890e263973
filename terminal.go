package msgbox

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// TerminalHost renders the dialog as text and reads the chosen button from a
// terminal. It is a stand-in for hosts without a native dialog, such as a
// remote shell. The owner handle is ignored.
type TerminalHost struct {
	In  io.Reader
	Out io.Writer

	mtx sync.Mutex
}

// NewTerminalHost returns a host reading from standard input and writing to
// standard output.
func NewTerminalHost() *TerminalHost {
	return &TerminalHost{In: os.Stdin, Out: os.Stdout}
}

func (t *TerminalHost) MessageBox(owner HWND, text, caption []uint16, style uint32) int32 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	_, buttons := splitStyle(style)
	results := buttonResults[buttons]
	if len(results) == 0 {
		return 0
	}

	in, out := t.In, t.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	var (
		w        io.Writer
		readLine func(prompt string) (string, error)
	)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return 0
		}
		defer term.Restore(int(f.Fd()), state)

		tr := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{in, out}, "")
		w = tr
		readLine = func(prompt string) (string, error) {
			tr.SetPrompt(prompt)
			return tr.ReadLine()
		}
	} else {
		// Piped input is line-buffered text, not raw keystrokes.
		sc := bufio.NewScanner(in)
		sc.Split(scanAnyLines)
		w = out
		readLine = func(prompt string) (string, error) {
			fmt.Fprint(out, prompt)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return "", err
				}
				return "", io.EOF
			}
			return sc.Text(), nil
		}
	}

	fmt.Fprintln(w, "")
	if title := decodeUTF16(caption); title != "" {
		fmt.Fprintf(w, "# %s\n", title)
	}
	fmt.Fprintln(w, decodeUTF16(text))

	prompt := buttonPrompt(results) + ": "
	for {
		line, err := readLine(prompt)
		if err != nil {
			return int32(escapeResult(buttons))
		}
		if r, ok := matchButton(results, line); ok {
			return int32(r)
		}
		fmt.Fprintf(w, "Unrecognized choice %q\n", strings.TrimSpace(line))
	}
}

// scanAnyLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a
// lone "\r".
func scanAnyLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing "\r" may be followed by "\n" in the next read.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// buttonPrompt formats the choices as "[Yes/no/cancel]", capitalizing the
// default.
func buttonPrompt(results []Result) string {
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.String()
	}
	labels[0] = strings.ToUpper(labels[0][:1]) + labels[0][1:]
	return "[" + strings.Join(labels, "/") + "]"
}

var buttonHotkeys = map[Result]string{
	ResultOK:       "o",
	ResultCancel:   "c",
	ResultAbort:    "a",
	ResultRetry:    "r",
	ResultIgnore:   "i",
	ResultYes:      "y",
	ResultNo:       "n",
	ResultTryAgain: "t",
	ResultContinue: "c",
}

// matchButton resolves a typed line to one of results. Empty input selects
// the first (default) button.
func matchButton(results []Result, line string) (Result, bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return results[0], true
	}
	line = strings.ReplaceAll(line, " ", "-")
	for _, r := range results {
		if line == r.String() {
			return r, true
		}
	}
	hasContinue := false
	for _, r := range results {
		if r == ResultContinue {
			hasContinue = true
		}
	}
	for _, r := range results {
		// "c" means Continue when both are offered; Cancel keeps Esc/EOF.
		if r == ResultCancel && hasContinue {
			continue
		}
		if line == buttonHotkeys[r] {
			return r, true
		}
	}
	return ResultNone, false
}

// escapeResult is what closing the dialog without choosing yields: Cancel if
// offered, OK for the single-button set, and nothing otherwise.
func escapeResult(buttons Buttons) Result {
	for _, r := range buttonResults[buttons] {
		if r == ResultCancel {
			return ResultCancel
		}
	}
	if buttons == ButtonsOK {
		return ResultOK
	}
	return ResultNone
}
