package run

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/flarebyte/t9search/internal/config"
	"github.com/flarebyte/t9search/internal/match"
	"github.com/flarebyte/t9search/internal/report"
	"github.com/flarebyte/t9search/internal/search"
	"github.com/flarebyte/t9search/internal/t9"
	"github.com/spf13/cobra"
)

// settings is the effective configuration of one search: flag values, with
// config file values filling in flags the user did not set.
type settings struct {
	filter       string
	separated    bool
	mistakes     int
	fuzzy        string
	punctuation  string
	capacity     int
	inputPath    string
	inputFormat  string
	dir          string
	noGitignore  bool
	where        string
	whereTimeout time.Duration
	output       string
	strict       bool
	progress     bool
}

type query struct {
	opts         search.Options
	format       report.Format
	where        string
	whereTimeout time.Duration
}

func resolveSettings(cmd *cobra.Command, args []string, o *options) (settings, error) {
	s := settings{
		separated:    o.separated,
		mistakes:     o.mistakes,
		fuzzy:        o.fuzzy,
		punctuation:  o.punctuation,
		capacity:     o.capacity,
		inputPath:    o.inputPath,
		inputFormat:  o.inputFormat,
		dir:          o.dir,
		noGitignore:  o.noGitignore,
		where:        o.where,
		whereTimeout: o.whereTimeout,
		output:       o.output,
		strict:       o.strict,
		progress:     o.progress,
	}
	if len(args) > 0 {
		s.filter = args[0]
	}
	if o.cfgPath == "" {
		return s, nil
	}
	c, err := config.Load(o.cfgPath)
	if err != nil {
		return settings{}, err
	}
	s.apply(c, filepath.Dir(o.cfgPath), cmd.Flags().Changed)
	return s, nil
}

// apply copies the values set in c for every flag that was not changed on
// the command line. Relative paths in c are resolved against base.
func (s *settings) apply(c config.Config, base string, changed func(string) bool) {
	use := func(has bool, flag string) bool { return has && !changed(flag) }

	if use(c.Search.HasSeparated, "separated") {
		s.separated = c.Search.Separated
	}
	if use(c.Search.HasMistakes, "mistakes") {
		s.mistakes = c.Search.Mistakes
	}
	if use(c.Search.HasFuzzy, "fuzzy") {
		s.fuzzy = c.Search.Fuzzy
	}
	if use(c.Search.HasCapacity, "capacity") {
		s.capacity = c.Search.Capacity
	}
	if use(c.Search.HasStrict, "strict") {
		s.strict = c.Search.Strict
	}
	if use(c.Encoding.HasPunctuation, "punctuation") {
		s.punctuation = c.Encoding.Punctuation
	}
	if use(c.Input.HasPath, "input") {
		s.inputPath = resolvePath(base, c.Input.Path)
	}
	if use(c.Input.HasFormat, "input-format") {
		s.inputFormat = c.Input.Format
	}
	if use(c.Input.HasDir, "dir") {
		s.dir = resolvePath(base, c.Input.Dir)
	}
	if use(c.Input.HasNoGitignore, "no-gitignore") {
		s.noGitignore = c.Input.NoGitignore
	}
	if use(c.Where.HasInline, "where") {
		s.where = c.Where.Inline
	}
	if use(c.Where.HasTimeoutMs, "where-timeout") {
		s.whereTimeout = time.Duration(c.Where.TimeoutMs) * time.Millisecond
	}
	if use(c.Output.HasFormat, "output") {
		s.output = c.Output.Format
	}
}

func resolvePath(base, p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// query validates s. Every failure is an argument error.
func (s settings) query() (query, error) {
	f, err := search.ParseQuery(s.filter, s.mistakes)
	if err != nil {
		return query{}, err
	}
	punct, err := t9.ParsePunctuation(s.punctuation)
	if err != nil {
		return query{}, &search.ArgError{Err: err}
	}
	strategy, err := match.ParseFuzzyStrategy(s.fuzzy)
	if err != nil {
		return query{}, &search.ArgError{Err: err}
	}
	format, err := report.ParseFormat(s.output)
	if err != nil {
		return query{}, &search.ArgError{Err: err}
	}
	if s.capacity <= 0 {
		return query{}, &search.ArgError{Err: fmt.Errorf("capacity must be > 0, got %d", s.capacity)}
	}
	return query{
		opts: search.Options{
			Filter:     f,
			Budget:     s.mistakes,
			Discipline: match.New(s.separated, strategy),
			Encoder:    t9.NewEncoder(punct),
			Capacity:   s.capacity,
		},
		format:       format,
		where:        s.where,
		whereTimeout: s.whereTimeout,
	}, nil
}

var errSeparatedNotFirst = errors.New("-s must be the first argument")

// CheckSeparatedFirst rejects a search whose -s flag is not the first
// argument. Subcommand invocations are not checked.
func CheckSeparatedFirst(args []string) error {
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "version", "encode", "help", "completion":
		return nil
	}
	for _, a := range args[1:] {
		if a == "--" {
			break
		}
		if a == "-s" || a == "--separated" {
			return &search.ArgError{Err: errSeparatedNotFirst}
		}
	}
	return nil
}
