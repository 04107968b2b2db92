package dotprov

import (
	"fmt"

	"github.com/arthur-debert/dotprov/internal/version"
	"github.com/arthur-debert/dotprov/pkg/config"
	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options carries flag values shared between commands
type options struct {
	verbosity int
	cfg       *config.Config

	// flagKeys maps flag names onto the configuration keys they override
	flagKeys map[string]string
}

// bindOverride makes flag, when set, override the configuration key
func (o *options) bindOverride(flag, key string) {
	o.flagKeys[flag] = key
}

// overrides collects the values of bound flags set on cmd
func (o *options) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	for flag, key := range o.flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			out[key] = f.Value.String()
		}
	}
	return out
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{flagKeys: map[string]string{}}

	rootCmd := &cobra.Command{
		Use:     "dotprov",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.overrides(cmd))
			if err != nil {
				// logging is not configured yet, keep the console at WARN
				logging.SetupLogger(opts.verbosity, logging.Options{Console: cmd.ErrOrStderr()})
				return err
			}
			opts.cfg = cfg

			logging.SetupLogger(opts.verbosity, logging.Options{
				Console: cmd.ErrOrStderr(),
				File:    cfg.Logging.File,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetHelpFunc(markdownHelp(rootCmd.HelpFunc()))
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newProvisionCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := opts.cfg.TOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		// version needs neither configuration nor logging
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		PersistentPreRun:      func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
