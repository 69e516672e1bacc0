package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyqhyq3/winerror/internal/config"
	"github.com/hyqhyq3/winerror/internal/i18n"
	"github.com/hyqhyq3/winerror/internal/locale"
	"github.com/hyqhyq3/winerror/internal/message"
	"github.com/hyqhyq3/winerror/internal/msgid"
)

// Dependencies are the collaborators of the root command. Nil fields are
// built from Config on first use.
type Dependencies struct {
	Config  *config.Config
	Locales locale.Database
	Table   message.Table
	Logger  *zap.Logger
}

// Diagnostic is a user-facing message for a failure. Unwrap gives the cause.
type Diagnostic struct {
	Msg   string
	Cause error
}

func (d *Diagnostic) Error() string { return d.Msg }

func (d *Diagnostic) Unwrap() error { return d.Cause }

func fail(cause error, msg string) error {
	return &ExitCodeError{Code: codeFor(cause), Err: &Diagnostic{Msg: msg, Cause: cause}}
}

func NewRootCommand(deps Dependencies) *cobra.Command {
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	cmd := &cobra.Command{
		Use:   "winerror <message id>",
		Short: i18n.T("cmd.short"),
		Args:  cobra.ArbitraryArgs,
		// --language, --help and -- are handled by ParseArgs so that
		// "-5" or "--foo" reach the lookup as parameters.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			program := cmd.Root().Name()

			inv, err := ParseArgs(args)
			if err != nil {
				var missing *MissingValueError
				msg := err.Error()
				if errors.As(err, &missing) {
					msg = i18n.Tf("err.missingValue", map[string]interface{}{"Option": missing.Option})
				}
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
				fmt.Fprintln(cmd.ErrOrStderr())
				writeUsage(cmd.ErrOrStderr(), program)
				return &ExitCodeError{Code: ExitInvalidArgument}
			}

			mode := SelectMode(inv)
			deps.Logger.Debug("invocation", zap.Stringer("mode", mode), zap.Strings("params", inv.Params))

			switch mode {
			case ModeHelp:
				writeUsage(cmd.ErrOrStderr(), program)
				return nil
			case ModeUsage:
				writeUsage(cmd.ErrOrStderr(), program)
				return &ExitCodeError{Code: ExitUsage}
			}

			text, err := lookup(&deps, inv)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func lookup(deps *Dependencies, inv *Invocation) (string, error) {
	log := deps.Logger
	if len(inv.Params) > 1 {
		log.Debug("ignoring extra parameters", zap.Strings("params", inv.Params[1:]))
	}

	raw := inv.Params[0]
	id, err := msgid.Parse(raw)
	if err != nil {
		return "", fail(err, i18n.Tf("err.invalidNumber", map[string]interface{}{"Value": raw}))
	}

	lcid, err := resolveLocale(deps, inv)
	if err != nil {
		return "", err
	}

	if deps.Table == nil {
		table, err := message.NewTable(deps.Config.Source)
		if err != nil {
			return "", &ExitCodeError{
				Code: ExitUsage,
				Err:  &Diagnostic{Msg: i18n.Tf("err.source", map[string]interface{}{"Error": err.Error()}), Cause: err},
			}
		}
		deps.Table = table
	}

	log.Debug("lookup",
		zap.Stringer("id", id),
		zap.Uint32("lcid", uint32(lcid)),
		zap.String("source", deps.Table.Source()),
	)

	text, err := message.NewFormatter(deps.Table).Format(lcid, id)
	if err != nil {
		log.Debug("lookup failed", zap.Error(err))
		return "", fail(err, i18n.Tf("err.notFound", map[string]interface{}{"ID": id.String(), "LCID": uint32(lcid)}))
	}
	return text, nil
}

// resolveLocale prefers --language, then the configured language, then the
// current locale of the process.
func resolveLocale(deps *Dependencies, inv *Invocation) (locale.LCID, error) {
	if deps.Locales == nil {
		db, err := locale.System()
		if err != nil {
			return 0, fail(err, i18n.Tf("err.ambientLocale", map[string]interface{}{"Error": err.Error()}))
		}
		deps.Locales = db
	}
	resolver := locale.NewResolver(deps.Locales)

	value, ok := inv.Option(OptionLanguage)
	if !ok && deps.Config.Language != "" {
		value, ok = deps.Config.Language, true
	}
	if ok {
		lcid, err := resolver.Resolve(value)
		if err != nil {
			return 0, fail(err, i18n.Tf("err.invalidLocale", map[string]interface{}{"Value": value}))
		}
		return lcid, nil
	}

	lcid, err := resolver.Ambient()
	if err != nil {
		return 0, &ExitCodeError{
			Code: ExitInvalidLocale,
			Err:  &Diagnostic{Msg: i18n.Tf("err.ambientLocale", map[string]interface{}{"Error": err.Error()}), Cause: err},
		}
	}
	return lcid, nil
}
