package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-logmsg"
	"github.com/itsatony/go-logmsg/accessor"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	args         []string
	data         string
	dataFilePath string
	mode         string
	serializer   string
	placeholder  string
	fallback     string
}

// structuredOutput is the --mode structured document
type structuredOutput struct {
	Text         string       `yaml:"text"`
	Format       string       `yaml:"format"`
	LoggerFormat string       `yaml:"logger_format"`
	Args         []string     `yaml:"args,omitempty"`
	Misses       []missOutput `yaml:"misses,omitempty"`
}

type missOutput struct {
	Kind    string `yaml:"kind"`
	Raw     string `yaml:"raw"`
	Segment int    `yaml:"segment"`
}

func newRenderCmd() *cobra.Command {
	cfg := &renderConfig{}

	cmd := &cobra.Command{
		Use:     CmdNameRender + " [template]",
		Short:   HelpRenderShort,
		Long:    HelpRenderLong,
		Example: HelpRenderExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", HelpFlagTemplate)
	flags.StringArrayVarP(&cfg.args, FlagArg, FlagArgShort, nil, HelpFlagArg)
	flags.StringVarP(&cfg.data, FlagData, FlagDataShort, "", HelpFlagData)
	flags.StringVarP(&cfg.dataFilePath, FlagDataFile, FlagDataFileShort, "", HelpFlagDataFile)
	flags.StringVarP(&cfg.mode, FlagMode, FlagModeShort, FlagDefaultMode, HelpFlagMode)
	flags.StringVar(&cfg.serializer, FlagSerializer, FlagDefaultSerializer, HelpFlagSerializer)
	flags.StringVar(&cfg.placeholder, FlagPlaceholder, FlagDefaultPlaceholder, HelpFlagPlaceholder)
	flags.StringVar(&cfg.fallback, FlagFallback, FlagDefaultFallback, HelpFlagFallback)

	return cmd
}

func runRender(cmd *cobra.Command, cfg *renderConfig, args []string) error {
	if cfg.mode != ModeGeneric && cfg.mode != ModeLogger && cfg.mode != ModeStructured {
		return newExitError(ExitCodeUsageError, ErrMsgInvalidMode, fmt.Errorf("%q", cfg.mode))
	}

	engine, err := newRenderEngine(cfg, newLogger(cmd))
	if err != nil {
		return err
	}

	source, err := readTemplate(args, cfg.templatePath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	data, err := loadData(cfg.data, cfg.dataFilePath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	msg, err := engine.Render(source, logmsg.RenderContext{
		Args: positionalArgs(cfg.args),
		Data: data,
	})
	if err != nil {
		if _, ok := logmsg.CompileErrorKind(err); ok {
			return newExitError(ExitCodeValidationError, ErrMsgCompileFailed, diagnosticError(err))
		}
		return newExitError(ExitCodeError, ErrMsgRenderFailed, err)
	}

	return writeMessage(cmd.OutOrStdout(), cfg.mode, msg)
}

// newRenderEngine builds an engine from the render flags. Struct, typed map
// and typed slice data are reachable through the accessor package.
func newRenderEngine(cfg *renderConfig, logger *zap.Logger) (*logmsg.Engine, error) {
	if !logmsg.IsValidFallbackStrategy(cfg.fallback) {
		return nil, newExitError(ExitCodeUsageError, ErrMsgInvalidFallback, fmt.Errorf("%q", cfg.fallback))
	}
	serializer, err := logmsg.SerializerByName(cfg.serializer)
	if err != nil {
		return nil, newExitError(ExitCodeUsageError, FlagSerializer, err)
	}
	placeholders, err := logmsg.PlaceholderConventionByName(cfg.placeholder)
	if err != nil {
		return nil, newExitError(ExitCodeUsageError, FlagPlaceholder, err)
	}

	return logmsg.New(
		logmsg.WithLogger(logger),
		logmsg.WithSerializer(serializer),
		logmsg.WithPlaceholderConvention(placeholders),
		logmsg.WithFallbackStrategy(logmsg.ParseFallbackStrategy(cfg.fallback)),
		logmsg.WithPropertyAccessor(accessor.Reflect{}),
		logmsg.WithItemAccessor(accessor.Reflect{}),
	)
}

func writeMessage(w io.Writer, mode string, msg *logmsg.Message) error {
	switch mode {
	case ModeLogger:
		fmt.Fprintln(w, msg.LoggerFormat())
		for i, arg := range msg.LoggerArgs() {
			fmt.Fprintf(w, LoggerArgFormat, i, arg)
		}
		return nil

	case ModeStructured:
		out := structuredOutput{
			Text:         msg.String(),
			Format:       msg.Format(),
			LoggerFormat: msg.LoggerFormat(),
		}
		for _, arg := range msg.Args() {
			out.Args = append(out.Args, fmt.Sprint(arg))
		}
		for _, miss := range msg.Misses() {
			out.Misses = append(out.Misses, missOutput{
				Kind:    string(miss.Kind),
				Raw:     miss.Raw,
				Segment: miss.Segment,
			})
		}
		encoded, err := yaml.Marshal(out)
		if err != nil {
			return newExitError(ExitCodeError, ErrMsgEncodeOutputFailed, err)
		}
		_, err = w.Write(encoded)
		return err

	default:
		fmt.Fprintln(w, msg.String())
		return nil
	}
}
