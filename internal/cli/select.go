package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"examgen/internal/assemble"
	"examgen/internal/bank"
	"examgen/internal/logging"
	"examgen/internal/selector"
	"examgen/internal/shuffle"
	"examgen/internal/ui/summary"
)

var newSeed = shuffle.NewSeed

// selectParams are the parsed flags of the select command.
type selectParams struct {
	examPath  string
	seed      string
	versions  int
	outDir    string
	inspect   bool
	force     bool
	answerKey bool
	verbose   bool
	colorMode string
	noColor   bool
}

func runSelect(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		var params selectParams
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		flags.StringVar(&params.examPath, "exam", "", "Path to exam file (default: search for exam.yml)")
		flags.StringVar(&params.seed, "seed", "", "Seed for a reproducible selection (default: random)")
		flags.IntVar(&params.versions, "versions", 1, "Number of lettered exam versions")
		flags.StringVar(&params.outDir, "out", "", "Output directory (default: the exam file's directory)")
		flags.BoolVar(&params.inspect, "inspect", false, "Keep bank order instead of shuffling")
		flags.BoolVar(&params.force, "force", false, "Overwrite existing manifests")
		flags.BoolVar(&params.answerKey, "answer-key", false, "Mark manifests for rendering with solutions")
		flags.BoolVar(&params.verbose, "verbose", false, "Log every question added to a section")
		flags.StringVar(&params.colorMode, "color", "auto", "Summary color: auto|always|never")
		flags.BoolVar(&params.noColor, "no-color", false, "Disable summary colors")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		color, err := resolveColorMode(params.colorMode, params.noColor, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if color.warning != "" {
			fmt.Fprintln(stderr, color.warning)
		}

		seed, generated, err := resolveSeed(params.seed)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		versions, err := assemble.Versions(seed, params.versions)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		resolved, err := resolveExamPath(params.examPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to find exam: %v\n", err)
			return ExitError
		}
		b, err := bank.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load exam:\n%s\n", err.Error())
			return ExitError
		}

		logger := logging.New(stderr, params.verbose)
		defer func() { _ = logger.Sync() }()
		if generated {
			fmt.Fprintf(stdout, "Using random seed %d\n", seed)
		}

		exams, err := selectVersions(b, versions, params, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Selection failed:\n%v\n", err)
			return ExitError
		}

		outDir := params.outDir
		if strings.TrimSpace(outDir) == "" {
			outDir = b.Dir
		}
		paths := make([]string, len(exams))
		for i, exam := range exams {
			paths[i] = assemble.ManifestPath(outDir, exam.Version)
			if err := assemble.EnsureWritable(paths[i], params.force); err != nil {
				fmt.Fprintf(stderr, "Failed to write manifest: %v\n", err)
				return ExitError
			}
		}
		for i, exam := range exams {
			if err := assemble.WriteManifest(exam, paths[i], params.force); err != nil {
				fmt.Fprintf(stderr, "Failed to write manifest: %v\n", err)
				return ExitError
			}
			fmt.Fprintln(stdout, summary.Render(exam, summary.Options{
				NoColor:      !color.useColor,
				ManifestPath: paths[i],
			}))
		}
		return ExitOK
	}
}

// resolveSeed parses the seed flag or draws a random seed when it is empty.
func resolveSeed(value string) (seed int64, generated bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		seed, err = newSeed()
		if err != nil {
			return 0, false, fmt.Errorf("generate seed: %w", err)
		}
		return seed, true, nil
	}
	seed, err = strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("seed must be an integer: %q", value)
	}
	return seed, false, nil
}

// selectVersions runs one independent selection per version concurrently.
// Any fatal error cancels the whole command before manifests are written.
func selectVersions(b bank.Bank, versions []assemble.Version, params selectParams, logger *zap.Logger) ([]assemble.Exam, error) {
	exams := make([]assemble.Exam, len(versions))
	var g errgroup.Group
	for i, version := range versions {
		g.Go(func() error {
			versionLogger := logger
			if version.Label != "" {
				versionLogger = logger.With(zap.String("version", version.Label))
			}
			outcome, err := selector.Run(b.Root, selector.Options{
				Seed:     version.Seed,
				Inspect:  params.inspect,
				Overflow: b.Settings.TypeOverflow,
				Logger:   versionLogger,
			})
			if err != nil {
				return versionError(version, err)
			}
			exam, err := assemble.Build(outcome, assemble.Options{
				Version:   version.Label,
				Settings:  b.Settings,
				AnswerKey: params.answerKey,
				Inspect:   params.inspect,
			})
			if err != nil {
				return versionError(version, err)
			}
			exams[i] = exam
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return exams, nil
}

func versionError(version assemble.Version, err error) error {
	if version.Label == "" {
		return err
	}
	return fmt.Errorf("version %s: %w", version.Label, err)
}
