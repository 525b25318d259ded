// Package run implements the search performed by the root command.
package run

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/flarebyte/t9search/internal/directory"
	"github.com/flarebyte/t9search/internal/report"
	"github.com/flarebyte/t9search/internal/search"
	"github.com/flarebyte/t9search/internal/where"
	"github.com/spf13/cobra"
)

type options struct {
	separated    bool
	mistakes     int
	fuzzy        string
	punctuation  string
	capacity     int
	cfgPath      string
	inputPath    string
	inputFormat  string
	dir          string
	noGitignore  bool
	where        string
	whereTimeout time.Duration
	output       string
	strict       bool
	verbose      bool
	progress     bool
}

// Bind registers the search flags on cmd and makes it run a search.
func Bind(cmd *cobra.Command) {
	o := &options{}
	f := cmd.Flags()
	f.BoolVarP(&o.separated, "separated", "s", false, "Match filter digits with gaps between them (must be the first argument)")
	f.IntVarP(&o.mistakes, "mistakes", "l", 0, "Maximum number of mistakes for approximate matches")
	f.StringVar(&o.fuzzy, "fuzzy", "bitap", "Approximate matcher for contiguous search: bitap|edit-distance")
	f.StringVar(&o.punctuation, "punctuation", "literal", "Characters outside the keypad: literal|drop")
	f.IntVar(&o.capacity, "capacity", search.DefaultCapacity, "Maximum number of similar entries kept")
	f.StringVarP(&o.cfgPath, "config", "c", "", "Path to config file (.cue)")
	f.StringVarP(&o.inputPath, "input", "i", "-", "Directory file to read, - for stdin")
	f.StringVar(&o.inputFormat, "input-format", "lines", "Input format: lines|yaml")
	f.StringVar(&o.dir, "dir", "", "Read every *.t9.txt and *.t9.yaml file under this directory")
	f.BoolVar(&o.noGitignore, "no-gitignore", false, "Do not honor .gitignore files under --dir")
	f.StringVar(&o.where, "where", "", "Lua expression over name, number, t9name, t9number")
	f.DurationVar(&o.whereTimeout, "where-timeout", where.DefaultTimeout, "Timeout for one --where evaluation")
	f.StringVarP(&o.output, "output", "o", "text", "Output format: text|json|yaml")
	f.BoolVar(&o.strict, "strict", false, "Exit with status 2 when nothing is found")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Log matching decisions to stderr")
	f.BoolVar(&o.progress, "progress", false, "Report scan progress on stderr")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(cmd, args, o)
		if err != nil {
			return err
		}
		return runSearch(cmd, s, o.verbose)
	}
}

func runSearch(cmd *cobra.Command, s settings, verbose bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	q, err := s.query()
	if err != nil {
		return err
	}
	if q.where != "" {
		pred, err := where.Compile(q.where, q.whereTimeout)
		if err != nil {
			return &search.ArgError{Err: err}
		}
		defer pred.Close()
		q.opts.Where = pred
	}
	q.opts.Logger = logger

	sess, err := search.NewSession(q.opts)
	if err != nil {
		return err
	}
	src, closeSrc, err := openSource(cmd.InOrStdin(), s)
	if err != nil {
		return err
	}
	defer closeSrc()

	progress := newProgressReporter(s.progress, cmd.ErrOrStderr())
	counted := progress.wrap(src)
	stop := progress.start(ctx)
	defer stop()

	out := cmd.OutOrStdout()
	var exact []directory.Record
	emit := func(r directory.Record) error {
		if q.format == report.FormatText {
			return report.WriteEntry(out, r)
		}
		exact = append(exact, r)
		return nil
	}

	rep, err := sess.Run(ctx, counted, emit)
	if err != nil {
		logger.Debug("scan stopped", "scanned", rep.Scanned, "exact", rep.Exact, "error", err)
		return runExitError{code: exitCodeExecErr, msg: err.Error()}
	}
	if err := writeReport(out, q.format, rep, exact); err != nil {
		return err
	}
	return evaluateSearchExit(rep, s.strict)
}

func writeReport(w io.Writer, format report.Format, rep search.Report, exact []directory.Record) error {
	if format == report.FormatText {
		return report.WriteSummary(w, rep)
	}
	return report.WriteDocument(w, format, report.NewDocument(rep, exact))
}

func openSource(stdin io.Reader, s settings) (directory.Source, func(), error) {
	format, err := directory.ParseFormat(s.inputFormat)
	if err != nil {
		return nil, nil, &search.ArgError{Err: err}
	}
	if s.dir != "" {
		m, err := directory.OpenDir(s.dir, s.noGitignore)
		if err != nil {
			return nil, nil, fmt.Errorf("open directory %s: %w", s.dir, err)
		}
		if len(m.Sources) == 0 {
			return nil, nil, fmt.Errorf("no directory files under %s", s.dir)
		}
		return m, func() { _ = m.Close() }, nil
	}
	if s.inputPath == "" || s.inputPath == "-" {
		return directory.NewSource(stdin, format, "stdin"), func() {}, nil
	}
	src := directory.Open(s.inputPath, format)
	return src, func() {
		if c, ok := src.(io.Closer); ok {
			_ = c.Close()
		}
	}, nil
}
