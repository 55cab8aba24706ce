package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/atsmatch/atsmatch/internal/extract"
	"github.com/atsmatch/atsmatch/internal/logger"
	"github.com/atsmatch/atsmatch/internal/matcher"
	"github.com/atsmatch/atsmatch/internal/report"
	"github.com/atsmatch/atsmatch/internal/resolve"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// previewLimit caps extracted text previews in debug logs.
const previewLimit = 120

func init() {
	rootCmd.Flags().StringP("resume", "r", "", "path to the resume file (.pdf or .txt)")
	rootCmd.Flags().String("job-file", "", "path to a job description text file")
	rootCmd.Flags().String("job-text", "", "job description text as a string (wrap in quotes)")
	rootCmd.Flags().BoolP("json", "j", false, "output the result as JSON")
	rootCmd.Flags().StringP("out", "o", "", "also write the rendered output to a file")

	rootCmd.MarkFlagsMutuallyExclusive("job-file", "job-text")

	viper.BindPFlag("resume", rootCmd.Flags().Lookup("resume"))
	viper.BindPFlag("job.file", rootCmd.Flags().Lookup("job-file"))
	viper.BindPFlag("job.text", rootCmd.Flags().Lookup("job-text"))
	viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
	viper.BindPFlag("out", rootCmd.Flags().Lookup("out"))
}

// run is the main command for the cli.
func run() {
	logger, err := logger.New(viper.GetBool("log-json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the atsmatch", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if err := compare(config, logger); err != nil {
		logger.Error("exiting", zap.Error(err))
		_ = logger.Sync()
		os.Exit(exitCode(err))
	}
}

// compare resolves the inputs, scores the résumé and renders the result.
func compare(config *Config, base *zap.Logger) error {
	if config == nil {
		config = &Config{}
	}
	if config.Job == nil {
		config.Job = &JobConfig{}
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	// Prompting is reserved for interactive runs; a piped stdin carries the
	// job description and must not be consumed by the prompt.
	var prompter resolve.Prompter
	if interactive {
		prompter = resolve.TerminalPrompter{}
	}

	resumePath, err := resolve.Resume(config.Resume, prompter)
	if err != nil {
		return err
	}

	jobText, origin, err := resolve.Job(resolve.JobSource{
		Text:  config.Job.Text,
		File:  config.Job.File,
		Stdin: os.Stdin,
		Piped: !interactive,
	})
	if err != nil {
		return err
	}

	runLog := logger.WithRunFields(base, resumePath, string(origin))

	extractor, err := extract.ForPath(resumePath)
	if err != nil {
		return err
	}

	resumeText, err := extractor.Extract(resumePath)
	if err != nil {
		return fmt.Errorf("extracting resume text: %w", err)
	}

	runLog.Debug("extracted resume text", zap.String("preview", logger.TruncateForLog(resumeText, previewLimit)))
	runLog.Debug("resolved job description", zap.String("preview", logger.TruncateForLog(jobText, previewLimit)))

	result := matcher.Compare(resumeText, jobText)

	runLog.Info("comparison finished",
		zap.Float64("score", result.Score),
		zap.Int("matched", len(result.MatchedKeywords)),
		zap.Int("missing", len(result.MissingKeywords)),
	)

	out, closeOut, err := outputWriter(os.Stdout, config.Out)
	if err != nil {
		return err
	}

	if err := report.Render(out, result, config.JSON); err != nil {
		_ = closeOut()
		return fmt.Errorf("rendering result: %w", err)
	}

	return closeOut()
}

// outputWriter returns the destination for the rendered report. With an out
// path the report goes to both stdout and the file.
func outputWriter(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}

	return io.MultiWriter(stdout, f), f.Close, nil
}

// exitCode classifies input-resolution failures apart from runtime failures.
func exitCode(err error) int {
	var notFound *resolve.FileNotFoundError
	var unsupported *extract.UnsupportedFormatError

	switch {
	case errors.Is(err, resolve.ErrNoResume),
		errors.Is(err, resolve.ErrNoJobDescription),
		errors.As(err, &notFound),
		errors.As(err, &unsupported):
		return 2
	default:
		return 1
	}
}
