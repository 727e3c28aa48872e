package main

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// readTemplate returns the inline template from args, or reads it from
// path ("-" for stdin). Exactly one of the two must be given.
func readTemplate(args []string, path string, stdin io.Reader) (string, error) {
	switch {
	case len(args) > 0 && path != "":
		return "", newExitError(ExitCodeUsageError, ErrMsgTemplateTwice, nil)
	case len(args) > 0:
		return args[0], nil
	case path == "":
		return "", newExitError(ExitCodeUsageError, ErrMsgMissingTemplate, nil)
	}

	content, err := readInput(path, stdin)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, newExitError(ExitCodeInputError, ErrMsgReadStdinFailed, err)
		}
		return content, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, newExitError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	return content, nil
}

// loadData decodes tree data given inline or in a file. YAML is a superset
// of JSON, so one decoder serves both. No data yields nil.
func loadData(inline, filePath string, stdin io.Reader) (any, error) {
	var raw []byte
	switch {
	case inline != "" && filePath != "":
		return nil, newExitError(ExitCodeUsageError, ErrMsgDataTwice, nil)
	case filePath != "":
		content, err := readInput(filePath, stdin)
		if err != nil {
			return nil, err
		}
		raw = content
	case inline != "":
		raw = []byte(inline)
	default:
		return nil, nil
	}

	var data any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, newExitError(ExitCodeInputError, ErrMsgInvalidData, err)
	}
	return data, nil
}

// positionalArgs converts --arg values. No flag at all means no argument
// list, which is distinct from an empty one.
func positionalArgs(values []string) []any {
	if len(values) == 0 {
		return nil
	}
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
