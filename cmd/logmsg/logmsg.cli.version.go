package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-logmsg"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: HelpVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, format)
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, HelpFlagFormat)

	return cmd
}

func runVersion(cmd *cobra.Command, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case OutputFormatText:
		fmt.Fprintf(out, VersionTextTemplate, CLIName, logmsg.Version, runtime.Version())
		return nil
	case OutputFormatJSON:
		jsonBytes, err := json.MarshalIndent(versionOutput{
			Version:   logmsg.Version,
			GoVersion: runtime.Version(),
		}, "", "  ")
		if err != nil {
			return newExitError(ExitCodeError, ErrMsgEncodeOutputFailed, err)
		}
		fmt.Fprintln(out, string(jsonBytes))
		return nil
	default:
		return newExitError(ExitCodeUsageError, ErrMsgInvalidFormat, fmt.Errorf("%q", format))
	}
}
