// Package config loads search settings from a CUE file.
//
// Every optional field carries a Has* flag so that command-line flags can
// override only what the user set explicitly.
package config

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
)

// ErrUnsupportedVersion is matched by errors for unknown configVersion values.
var ErrUnsupportedVersion = errors.New("unsupported configVersion")

// Config is the parsed configuration file.
type Config struct {
	ConfigVersion string
	Search        Search
	Encoding      Encoding
	Input         Input
	Where         Where
	Output        Output
}

// Search holds search.* settings.
type Search struct {
	Separated    bool
	Mistakes     int
	Fuzzy        string
	Capacity     int
	Strict       bool
	HasSeparated bool
	HasMistakes  bool
	HasFuzzy     bool
	HasCapacity  bool
	HasStrict    bool
}

// Encoding holds encoding.* settings.
type Encoding struct {
	Punctuation    string
	HasPunctuation bool
}

// Input holds input.* settings.
type Input struct {
	Path           string
	Format         string
	Dir            string
	NoGitignore    bool
	HasPath        bool
	HasFormat      bool
	HasDir         bool
	HasNoGitignore bool
}

// Where holds the optional Lua record predicate.
type Where struct {
	Inline       string
	TimeoutMs    int
	HasInline    bool
	HasTimeoutMs bool
}

// Output holds output.* settings.
type Output struct {
	Format    string
	HasFormat bool
}

// Load compiles and validates the CUE file at path.
func Load(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	var c Config
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(c.ConfigVersion) {
		return Config{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedVersion, c.ConfigVersion, SupportedConfigVersionsCSV())
	}
	c.Search = parseSearchSection(v)
	c.Encoding = parseEncodingSection(v)
	c.Input = parseInputSection(v)
	c.Where = parseWhereSection(v)
	c.Output = parseOutputSection(v)
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Search.HasMistakes && c.Search.Mistakes < 0 {
		return fmt.Errorf("invalid config: search.mistakes must be >= 0")
	}
	if c.Search.HasCapacity && c.Search.Capacity <= 0 {
		return fmt.Errorf("invalid config: search.capacity must be > 0")
	}
	if c.Where.HasTimeoutMs && c.Where.TimeoutMs <= 0 {
		return fmt.Errorf("invalid config: where.timeoutMs must be > 0")
	}
	return nil
}

func parseSearchSection(v cue.Value) Search {
	var s Search
	sv := v.LookupPath(cue.ParsePath("search"))
	if !sv.Exists() {
		return s
	}
	s.Separated, s.HasSeparated = lookupBool(sv, "separated")
	s.Mistakes, s.HasMistakes = lookupInt(sv, "mistakes")
	s.Fuzzy, s.HasFuzzy = lookupString(sv, "fuzzy")
	s.Capacity, s.HasCapacity = lookupInt(sv, "capacity")
	s.Strict, s.HasStrict = lookupBool(sv, "strict")
	return s
}

func parseEncodingSection(v cue.Value) Encoding {
	var e Encoding
	ev := v.LookupPath(cue.ParsePath("encoding"))
	if !ev.Exists() {
		return e
	}
	e.Punctuation, e.HasPunctuation = lookupString(ev, "punctuation")
	return e
}

func parseInputSection(v cue.Value) Input {
	var in Input
	iv := v.LookupPath(cue.ParsePath("input"))
	if !iv.Exists() {
		return in
	}
	in.Path, in.HasPath = lookupString(iv, "path")
	in.Format, in.HasFormat = lookupString(iv, "format")
	in.Dir, in.HasDir = lookupString(iv, "dir")
	in.NoGitignore, in.HasNoGitignore = lookupBool(iv, "noGitignore")
	return in
}

func parseWhereSection(v cue.Value) Where {
	var w Where
	wv := v.LookupPath(cue.ParsePath("where"))
	if !wv.Exists() {
		return w
	}
	w.Inline, w.HasInline = lookupString(wv, "inline")
	w.TimeoutMs, w.HasTimeoutMs = lookupInt(wv, "timeoutMs")
	return w
}

func parseOutputSection(v cue.Value) Output {
	var o Output
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return o
	}
	o.Format, o.HasFormat = lookupString(ov, "format")
	return o
}
