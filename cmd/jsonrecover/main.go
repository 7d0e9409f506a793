// Command jsonrecover extracts a JSON value from model output read from files
// or stdin and writes it to stdout, one document per input.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"charm.land/jsonrecover"
	"charm.land/jsonrecover/internal/config"
	"charm.land/jsonrecover/repair"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/charmbracelet/x/term"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	stdinSource = "-"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cli struct {
	format    string
	indent    bool
	html      bool
	showStage bool
	opts      []jsonrecover.Option
	logger    *slog.Logger
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(stderr, "jsonrecover: %v\n", err)
		return exitUsage
	}

	var (
		indent    bool
		html      bool
		showStage bool
		debug     bool
		code      = exitOK
	)
	cmd := &cobra.Command{
		Use:           "jsonrecover [flags] [file ...]",
		Short:         "Recover a JSON value from model output",
		Long:          "jsonrecover extracts a JSON value from each input and writes it to stdout.\nReads stdin when no files are given.",
		Version:       jsonrecover.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(_ *cobra.Command, sources []string) {
			if debug {
				cfg.LogLevel = "debug"
			}
			code = execute(cfg, sources, indent, html, showStage, stdin, stdout, stderr)
		},
	}
	cmd.SetVersionTemplate("jsonrecover {{.Version}}\n")
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&cfg.Format, "format", cfg.Format, "output format: json or yaml")
	flags.BoolVar(&indent, "indent", false, "indent JSON output")
	flags.BoolVar(&html, "html", false, "convert HTML input to markdown before recovery")
	flags.StringVar(&cfg.Repair, "repair", cfg.Repair, "last-resort repairer: "+strings.Join(repair.Names(), ", "))
	flags.IntVar(&cfg.MaxBytes, "max-bytes", cfg.MaxBytes, "reject inputs larger than this many bytes, 0 disables")
	flags.BoolVar(&showStage, "stage", false, "print the recovery stage of each input to stderr")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "jsonrecover: %v\n", err)
		return exitUsage
	}
	return code
}

func execute(cfg *config.Config, sources []string, indent, html, showStage bool, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "jsonrecover: %v\n", err)
		return exitUsage
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "jsonrecover: %v\n", err)
		return exitUsage
	}

	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(stderr),
	}))

	opts := []jsonrecover.Option{jsonrecover.WithMaxInputSize(cfg.MaxBytes)}
	if cfg.Repair != "" {
		r, err := repair.Lookup(cfg.Repair)
		if err != nil {
			logger.Error("Invalid repairer", "error", err)
			return exitUsage
		}
		opts = append(opts, jsonrecover.WithRepair(r))
	}

	c := &cli{
		format:    cfg.Format,
		indent:    indent,
		html:      html,
		showStage: showStage,
		opts:      opts,
		logger:    logger,
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
	}

	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	code := exitOK
	for _, source := range sources {
		if err := c.process(source, len(sources) > 1); err != nil {
			code = exitFailed
		}
	}
	return code
}

func (c *cli) process(source string, multi bool) error {
	log := c.logger.With("input", source, "recovery_id", uuid.NewString())

	text, err := c.read(source)
	if err != nil {
		log.Error("Failed to read input", "error", err)
		return err
	}

	if c.html {
		text, err = htmltomarkdown.ConvertString(text)
		if err != nil {
			log.Error("Failed to convert HTML input", "error", err)
			return err
		}
	}

	opts := append([]jsonrecover.Option{jsonrecover.WithLogger(log)}, c.opts...)
	res, err := jsonrecover.RecoverResult(text, opts...)
	if err != nil {
		log.Error("Failed to recover JSON", "error", err)
		return err
	}
	log.Debug("Recovered JSON", "stage", res.Stage, "offset", res.Offset)

	if c.showStage {
		fmt.Fprintf(c.stderr, "%s: %s\n", source, res.Stage)
	}

	out, err := c.encode(res, multi)
	if err != nil {
		log.Error("Failed to encode output", "error", err)
		return err
	}
	_, err = c.stdout.Write(out)
	return err
}

func (c *cli) read(source string) (string, error) {
	if source == stdinSource {
		data, err := io.ReadAll(c.stdin)
		return string(data), err
	}
	data, err := os.ReadFile(source)
	return string(data), err
}

// encode renders res in the configured format. JSON output is produced from
// the recovered text so that key order is kept.
func (c *cli) encode(res *jsonrecover.Result, multi bool) ([]byte, error) {
	var buf bytes.Buffer
	switch c.format {
	case config.FormatYAML:
		out, err := yaml.Marshal(res.Value)
		if err != nil {
			return nil, err
		}
		if multi {
			buf.WriteString("---\n")
		}
		buf.Write(out)
	default:
		var err error
		if c.indent {
			err = json.Indent(&buf, bytes.TrimSpace(res.Raw), "", "  ")
		} else {
			err = json.Compact(&buf, res.Raw)
		}
		if err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
