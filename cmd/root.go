package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/djcass44/go-utils/logging"
	"github.com/djcass44/shortsum/pkg/airutil"
	"github.com/djcass44/shortsum/pkg/digest"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	flagLogLevel  = "v"
	flagExpandEnv = "expand-env"
)

func newCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shortsum <file_path>",
		Short:         "print a truncated SHA256 digest of a file",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Prog: programName()}
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// keep a logger that was handed in with the context
			if _, err := logr.FromContext(cmd.Context()); err == nil {
				return
			}
			logLevel, _ := cmd.Flags().GetInt(flagLogLevel)

			zc := zap.NewProductionConfig()
			zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))

			_, ctx := logging.NewZap(cmd.Context(), zc)
			cmd.SetContext(ctx)
		},
		RunE: shortsum,
	}
	cmd.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
	cmd.Flags().Bool(flagExpandEnv, false, "expand environment variables in the file path")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Prog: programName(), Err: err}
	})

	return cmd
}

func shortsum(cmd *cobra.Command, args []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	expandEnv, _ := cmd.Flags().GetBool(flagExpandEnv)

	path := args[0]
	if expandEnv {
		var err error
		path, err = airutil.ExpandEnv(path)
		if err != nil {
			return err
		}
		log.V(2).Info("expanded file path", "original", args[0], "path", path)
	}

	log.V(1).Info("reading file", "path", path)
	sum, err := digest.File(path)
	if err != nil {
		return err
	}
	log.V(1).Info("computed digest", "path", path, "sha256", sum)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), digest.Short(sum))
	return err
}

// execute runs the command against args and returns
// the process exit code. All user-facing output,
// errors included, is written to out.
func execute(ctx context.Context, version string, args []string, out io.Writer) int {
	cmd := newCommand(version)
	cmd.SetArgs(args)
	cmd.SetOut(out)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(out, err)
		return 1
	}
	return 0
}

func Execute(version string) {
	os.Exit(execute(context.Background(), version, os.Args[1:], os.Stdout))
}
