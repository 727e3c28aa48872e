package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-logmsg"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	format       string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
	Offset  int    `json:"offset,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func newValidateCmd() *cobra.Command {
	cfg := &validateConfig{}

	cmd := &cobra.Command{
		Use:   CmdNameValidate + " [template]",
		Short: HelpValidateShort,
		Long:  HelpValidateLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, cfg, args)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", HelpFlagTemplate)
	cmd.Flags().StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, HelpFlagFormat)

	return cmd
}

func runValidate(cmd *cobra.Command, cfg *validateConfig, args []string) error {
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return newExitError(ExitCodeUsageError, ErrMsgInvalidFormat, fmt.Errorf("%q", cfg.format))
	}

	source, err := readTemplate(args, cfg.templatePath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	_, compileErr := logmsg.Compile(source, logmsg.WithLogger(newLogger(cmd)))

	out := cmd.OutOrStdout()
	if cfg.format == OutputFormatJSON {
		if err := outputValidationJSON(out, compileErr); err != nil {
			return err
		}
	} else {
		outputValidationText(out, compileErr)
	}

	if compileErr != nil {
		return newExitError(ExitCodeValidationError, "", nil)
	}
	return nil
}

func outputValidationText(w io.Writer, compileErr error) {
	if compileErr == nil {
		fmt.Fprintln(w, ValidationTextSuccess)
		return
	}
	fmt.Fprintln(w, logmsg.CompileErrorDiagnostic(compileErr))
}

func outputValidationJSON(w io.Writer, compileErr error) error {
	output := validationOutput{Valid: compileErr == nil}
	if compileErr != nil {
		kind, _ := logmsg.CompileErrorKind(compileErr)
		pos, _ := logmsg.CompileErrorPosition(compileErr)
		output.Kind = string(kind)
		output.Message = compileErr.Error()
		output.Offset = pos.Offset
		output.Line = pos.Line
		output.Column = pos.Column
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return newExitError(ExitCodeError, ErrMsgEncodeOutputFailed, err)
	}
	fmt.Fprintln(w, string(jsonBytes))
	return nil
}

// diagnosticError presents a compile error as its caret diagnostic
func diagnosticError(err error) error {
	return errors.New(logmsg.CompileErrorDiagnostic(err))
}
