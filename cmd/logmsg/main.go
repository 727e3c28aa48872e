package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitCodeSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.msg != "" {
			fmt.Fprintln(stderr, exitErr.Error())
		}
		return exitErr.code
	}

	// Flag and argument errors reported by cobra
	fmt.Fprintln(stderr, err)
	return ExitCodeUsageError
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           CLIName,
		Short:         CLIDescription,
		Long:          CLILong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP(FlagVerbose, FlagVerboseShort, false, HelpFlagVerbose)

	root.AddCommand(
		newRenderCmd(),
		newValidateCmd(),
		newPartsCmd(),
		newVersionCmd(),
	)
	return root
}

// exitError carries an exit code out of a command. An empty msg means the
// command already reported the problem on its own.
type exitError struct {
	code  int
	msg   string
	cause error
}

func (e *exitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *exitError) Unwrap() error {
	return e.cause
}

func newExitError(code int, msg string, cause error) error {
	return &exitError{code: code, msg: msg, cause: cause}
}

// newLogger returns a development logger on w when --verbose is set, and a
// no-op logger otherwise.
func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool(FlagVerbose)
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
