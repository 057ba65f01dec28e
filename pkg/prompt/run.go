package prompt

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Run resolves the inputs, renders the document and writes it to
// opts.OutputPath, or to stdout followed by a newline when no output path is
// set. Nothing is written if resolution fails. The returned Result carries
// the token count for the caller to report.
func Run(fsys afero.Fs, opts Options, stdout io.Writer, logger *zap.Logger) (Result, error) {
	startTime := time.Now()
	logger.Debug("Resolving inputs",
		zap.Strings("prompts", opts.PromptPaths),
		zap.Strings("files", opts.FilePaths),
		zap.String("list", opts.ListPath),
		zap.Int("inlinePrompts", len(opts.InlinePrompts)))

	inputs, err := Resolve(fsys, opts, logger)
	if err != nil {
		return Result{}, err
	}

	rendered := Render(BuildDocument(inputs.Templates, inputs.Files))

	if opts.OutputPath != "" {
		if err := WriteOutput(opts.OutputPath, rendered, logger); err != nil {
			return Result{}, err
		}
	} else if _, err := io.WriteString(stdout, rendered+"\n"); err != nil {
		logger.Debug("Failed to write prompt to stdout", zap.Error(err))
		return Result{}, fmt.Errorf("failed to write prompt to stdout: %w", err)
	}

	result := Result{
		Document:  rendered,
		Tokens:    CountTokens(rendered),
		Templates: len(inputs.Templates),
		Files:     len(inputs.Files),
	}
	logger.Debug("Prompt generated",
		zap.Int("templates", result.Templates),
		zap.Int("files", result.Files),
		zap.Int("tokens", result.Tokens),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}
