package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crafted-tech/msgbox"
	"github.com/spf13/cobra"
)

// errDeclined is returned when the dialog was dismissed with a button that is
// not affirmative, or could not be shown at all.
var errDeclined = errors.New("declined")

var lookupHost = msgbox.LookupHost

func newRootCommand() *cobra.Command {
	var (
		flags      dialogConfig
		configFile string
		logLevel   string
	)

	cmd := cobra.Command{
		Use:   "msgbox",
		Short: "Show a modal message box and report the pressed button",
		Long: `Show a modal message box and report the pressed button.

The name of the pressed button is printed on standard output. The exit status
is 0 for OK, Yes, Retry, Try Again and Continue, 1 for any other outcome, and
2 for usage or configuration errors.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), logLevel)

			conf, err := loadDialogConfig(configFile)
			if err != nil {
				return err
			}
			conf.merge(cmd.Flags(), &flags)

			host, err := lookupHost(conf.Host)
			if err != nil {
				return err
			}

			// Record the raw code so the button name can be printed.
			var code int32
			recorder := msgbox.HostFunc(func(owner msgbox.HWND, text, caption []uint16, style uint32) int32 {
				code = host.MessageBox(owner, text, caption, style)
				return code
			})

			box, err := conf.messageBox(recorder)
			if err != nil {
				return err
			}
			box = box.WithLogger(log)

			log.Info("showing message box",
				slog.String("host", conf.Host),
				slog.String("icon", conf.Icon),
				slog.String("buttons", conf.Buttons),
			)

			var affirmative bool
			box.ShowWithCallback(func(ok bool) { affirmative = ok })

			fmt.Fprintln(cmd.OutOrStdout(), msgbox.DecodeResult(code))
			if !affirmative {
				return errDeclined
			}
			return nil
		},
	}

	defaults := defaultDialogConfig()
	f := cmd.Flags()
	f.StringVarP(&flags.Title, "title", "t", defaults.Title, "Title bar text")
	f.StringVarP(&flags.Message, "message", "m", defaults.Message, "Message text")
	f.StringVarP(&flags.Icon, "icon", "i", defaults.Icon, "Icon: none, error, question, warning, information")
	f.StringVarP(&flags.Buttons, "buttons", "b", defaults.Buttons, "Button set: ok, ok-cancel, abort-retry-ignore, yes-no-cancel, yes-no, retry-cancel, cancel-try-continue")
	f.Uint64Var(&flags.Owner, "owner", 0, "Owner window handle (0 for none)")
	f.StringVar(&flags.Host, "host", defaults.Host, "Dialog host: "+strings.Join(msgbox.HostNames(), ", "))
	f.StringVarP(&configFile, "config", "c", "", "YAML file describing the dialog; flags override its values")
	f.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	return &cmd
}
