package dotprov

import (
	"io"
	"os"

	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"github.com/arthur-debert/dotprov/pkg/logging"
	"github.com/arthur-debert/dotprov/pkg/platform"
	"github.com/arthur-debert/dotprov/pkg/provision"
	"github.com/arthur-debert/dotprov/pkg/report"
	"github.com/arthur-debert/dotprov/pkg/types"
	"github.com/spf13/cobra"
)

func newProvisionCmd(opts *options) *cobra.Command {
	var (
		input       string
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:     "provision [INFO]",
		Short:   MsgProvisionShort,
		Long:    MsgProvisionLong,
		Example: MsgProvisionExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.provision")

			info, err := provisionInfo(opts, args)
			if err != nil {
				return err
			}

			inFormat, err := types.ParseInputFormat(inputFormat)
			if err != nil {
				return err
			}

			outFormat, err := report.ParseFormat(opts.cfg.Output.Format)
			if err != nil {
				return err
			}
			reporter, err := report.New(outFormat, cmd.OutOrStdout(), opts.cfg.Output.NoColor)
			if err != nil {
				return err
			}

			in, closeInput, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer closeInput()

			var (
				summary  types.Summary
				writeErr error
			)
			emit := func(result types.Result) {
				summary.Add(result)
				if err := reporter.Report(result); err != nil && writeErr == nil {
					writeErr = err
				}
			}

			states, err := types.DecodeStates(in, inFormat)
			if err != nil {
				logger.Warn().Err(err).Msg("Malformed desired states")
				emit(types.DeserializeFailed(err))
			} else {
				logger.Info().
					Int("states", len(states)).
					Strs("sources", info.Sources).
					Msg("Starting provision")

				fsys := filesystem.NewOS()
				provision.NewProvisioner(fsys, platform.Default(fsys)).Run(info, states, emit)
			}

			if err := reporter.Finish(summary); err != nil && writeErr == nil {
				writeErr = err
			}
			if writeErr != nil {
				return errors.Wrap(writeErr, errors.ErrIO, "failed writing results")
			}

			logger.Info().
				Int("total", summary.Total).
				Int("changed", summary.Changed).
				Int("failed", summary.Failed).
				Msg("Provision completed")

			if opts.cfg.Provision.FailOnError && summary.Failed > 0 {
				return errors.Newf(errors.ErrEntryFailed, MsgErrEntriesFailed, summary.Failed, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVar(&inputFormat, "input-format", string(types.InputJSON), MsgFlagInputFormat)
	cmd.Flags().StringP("format", "f", "", MsgFlagFormat)
	cmd.Flags().Bool("fail-on-error", false, MsgFlagFailOnError)
	cmd.Flags().Bool("no-color", false, MsgFlagNoColor)

	opts.bindOverride("format", "output.format")
	opts.bindOverride("fail-on-error", "provision.fail_on_error")
	opts.bindOverride("no-color", "output.no_color")

	return cmd
}

// provisionInfo takes the source roots from the INFO argument, falling back
// to the configured ones.
func provisionInfo(opts *options, args []string) (types.ProvisionInfo, error) {
	if len(args) == 1 {
		return types.ParseProvisionInfo(args[0])
	}
	if len(opts.cfg.Provision.Sources) == 0 {
		return types.ProvisionInfo{}, errors.New(errors.ErrInvalidInput, MsgErrNoSources)
	}
	return types.ProvisionInfo{Sources: opts.cfg.Provision.Sources}, nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrOpenInput, path)
	}
	return f, func() { _ = f.Close() }, nil
}
