package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-logmsg"
)

// partOutput is one compiled part in the parts listing
type partOutput struct {
	Kind      string `yaml:"kind"`
	Raw       string `yaml:"raw"`
	Text      string `yaml:"text,omitempty"`
	Index     *int   `yaml:"index,omitempty"`
	Path      string `yaml:"path,omitempty"`
	Serialize bool   `yaml:"serialize,omitempty"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
}

func newPartsCmd() *cobra.Command {
	var templatePath string

	cmd := &cobra.Command{
		Use:   CmdNameParts + " [template]",
		Short: HelpPartsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParts(cmd, templatePath, args)
		},
	}
	cmd.Flags().StringVarP(&templatePath, FlagTemplate, FlagTemplateShort, "", HelpFlagTemplate)

	return cmd
}

func runParts(cmd *cobra.Command, templatePath string, args []string) error {
	source, err := readTemplate(args, templatePath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	tmpl, err := logmsg.Compile(source, logmsg.WithLogger(newLogger(cmd)))
	if err != nil {
		return newExitError(ExitCodeValidationError, ErrMsgCompileFailed, diagnosticError(err))
	}

	encoded, err := yaml.Marshal(describeParts(tmpl))
	if err != nil {
		return newExitError(ExitCodeError, ErrMsgEncodeOutputFailed, err)
	}
	_, err = cmd.OutOrStdout().Write(encoded)
	return err
}

func describeParts(tmpl *logmsg.Template) []partOutput {
	parts := tmpl.Parts()
	out := make([]partOutput, 0, len(parts))
	for _, part := range parts {
		span := part.SourceSpan()
		po := partOutput{
			Raw:   tmpl.Raw(part),
			Start: span.Start,
			End:   span.End,
		}
		switch p := part.(type) {
		case logmsg.Literal:
			po.Kind = PartKindLiteral
			po.Text = p.Text
		case logmsg.PositionalRef:
			index := p.Index
			po.Kind = PartKindPositional
			po.Index = &index
			po.Serialize = p.Serialize
		case logmsg.TreeDataRef:
			po.Kind = PartKindTreeData
			po.Path = logmsg.PathString(p.Path)
			po.Serialize = p.Serialize
		}
		out = append(out, po)
	}
	return out
}
