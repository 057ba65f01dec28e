package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/magnhaug/rp/pkg/config"
	"github.com/magnhaug/rp/pkg/logging"
	"github.com/magnhaug/rp/pkg/prompt"
	"github.com/magnhaug/rp/pkg/version"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the parsed command-line flags.
type rootOptions struct {
	prompts    []string
	files      []string
	list       string
	output     string
	silent     bool
	exclude    []string
	configPath string
	debug      bool
}

// NewRootCmd creates the rp command. Positional arguments become inline
// prompt templates.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rp [flags] [prompt...]",
		Short: "Aggregate prompt templates and files into a single XML prompt",
		Long: `rp (repo prompt) combines prompt templates and file contents into one XML
document:

  <prompt>
    <templates><template name="...">...</template></templates>
    <files><file path="...">...</file></files>
  </prompt>

Templates come from -p files and from positional arguments. Files come from -f
and from the paths listed in a -l file. The document is printed to stdout, or
written to -o, and the whitespace token count is reported on stderr.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.prompts, "prompt", "p", nil, "Path to a prompt template file (repeatable)")
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "Path to a single file (repeatable)")
	flags.StringVarP(&opts.list, "list", "l", "", "Path to a file containing a newline-separated list of file paths")
	flags.StringVarP(&opts.output, "output", "o", "", "Write output to this file instead of stdout")
	flags.BoolVarP(&opts.silent, "silent", "s", false, "Suppress stderr output")
	flags.StringArrayVarP(&opts.exclude, "exclude", "x", nil, "Skip list-file entries matching this gitignore-style pattern (repeatable)")
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/rp/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "Write debug logs to stderr (also RP_DEBUG=1)")
	flags.Bool("version", false, "Print version information and exit")

	return cmd
}

// runPrompt merges config with flags, runs the pipeline and reports the outcome.
func runPrompt(cmd *cobra.Command, opts *rootOptions, args []string) error {
	stderr := cmd.ErrOrStderr()

	cfgPath, explicit := config.Locate(opts.configPath)
	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err, Silent: opts.silent}
	}

	silent := opts.silent || cfg.Silent
	debug := !silent && (opts.debug || cfg.Debug || config.DebugFromEnv())

	logger := logging.New(debug, stderr, "rp", version.Version)
	defer func() { _ = logging.Sync(logger, stderr) }()
	logger.Debug("Loaded configuration", zap.String("path", cfgPath), zap.Bool("explicit", explicit))

	runOpts := prompt.Options{
		PromptPaths:     opts.prompts,
		FilePaths:       opts.files,
		ListPath:        opts.list,
		InlinePrompts:   args,
		OutputPath:      opts.output,
		DefaultTemplate: cfg.DefaultTemplate,
		Exclude:         append(append([]string{}, cfg.Exclude...), opts.exclude...),
	}

	reporter := prompt.NewReporter(stderr, silent)
	result, err := prompt.Run(afero.NewOsFs(), runOpts, cmd.OutOrStdout(), logger)
	if err != nil {
		logger.Debug("rp failed", zap.Error(err))
		reporter.Error(err)
		return &ExitError{Code: ExitFailure, Err: err, Silent: true}
	}

	reporter.Success(result.Tokens)
	return nil
}

// Execute runs rp with the process arguments and returns the exit code.
func Execute() int {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs rp with args, writing the document to stdout and
// diagnostics to stderr, and returns the exit code.
func ExecuteArgs(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCmd()
	cmd.SetArgs(guardCompletionRequest(cmd, args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		reportUnhandled(stderr, err)
	}
	return ExitCode(err)
}

// guardCompletionRequest stops cobra from dispatching a first positional
// argument that names its hidden completion command. A "--" is inserted before
// that argument so it reaches rp as an inline prompt; arguments after it are
// taken as prompts too.
func guardCompletionRequest(cmd *cobra.Command, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			if !strings.Contains(arg, "=") && flagTakesValue(cmd, arg) {
				i++
			}
		case arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd:
			guarded := make([]string, 0, len(args)+1)
			guarded = append(guarded, args[:i]...)
			guarded = append(guarded, "--")
			return append(guarded, args[i:]...)
		default:
			return args
		}
	}
	return args
}

// flagTakesValue reports whether arg is a "--name" or "-x" flag that consumes
// the following argument.
func flagTakesValue(cmd *cobra.Command, arg string) bool {
	flags := cmd.Flags()
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		flag := flags.Lookup(name)
		return flag != nil && flag.NoOptDefVal == ""
	}
	if len(arg) != 2 {
		return false
	}
	flag := flags.ShorthandLookup(arg[1:])
	return flag != nil && flag.NoOptDefVal == ""
}
