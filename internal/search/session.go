// Package search streams records through the matchers and collects the
// report.
//
// Records matching exactly are emitted as soon as they are read. While no
// exact match has been seen, records that match approximately are buffered as
// candidates; they are only reported when the stream ends without any exact
// match.
package search

import (
	"context"
	"io"
	"log/slog"

	"github.com/flarebyte/t9search/internal/directory"
	"github.com/flarebyte/t9search/internal/match"
	"github.com/flarebyte/t9search/internal/t9"
	"github.com/flarebyte/t9search/internal/where"
)

// Options configures a Session.
type Options struct {
	Filter     match.Filter
	Budget     int
	Discipline match.Discipline
	Encoder    t9.Encoder
	Capacity   int
	Where      *where.Predicate
	Logger     *slog.Logger
}

// Session holds the settings of one search.
type Session struct {
	opts Options
	log  *slog.Logger
}

// NewSession validates opts. A nil discipline selects contiguous matching
// with bitap.
func NewSession(opts Options) (*Session, error) {
	if err := match.ValidateBudget(opts.Filter, opts.Budget); err != nil {
		return nil, &ArgError{Err: err}
	}
	if opts.Discipline == nil {
		opts.Discipline = match.Contiguous{Strategy: match.FuzzyBitap}
	}
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{opts: opts, log: log}, nil
}

// Report summarizes a finished scan.
type Report struct {
	Filter     match.Filter
	Discipline string
	Exact      int
	Candidates []Candidate
	Scanned    int
	Skipped    int
}

// Total is the number of exact hits plus buffered candidates. Candidates
// buffered before the first exact hit are counted even though they are not
// reported.
func (r Report) Total() int { return r.Exact + len(r.Candidates) }

// Similar returns the candidates to report: none once an exact hit exists.
func (r Report) Similar() []Candidate {
	if r.Exact > 0 {
		return nil
	}
	return r.Candidates
}

// NotFound reports whether nothing matched.
func (r Report) NotFound() bool { return r.Total() == 0 }

// EmitFunc receives each exact match as soon as it is found.
type EmitFunc func(directory.Record) error

// Run scans src to the end. On a source, predicate or matcher error the scan
// stops and the report built so far is returned with the error.
func (s *Session) Run(ctx context.Context, src directory.Source, emit EmitFunc) (Report, error) {
	opts := s.opts
	rep := Report{Filter: opts.Filter, Discipline: opts.Discipline.Name()}
	buf := NewCandidateBuffer(opts.Capacity)
	finish := func(err error) (Report, error) {
		rep.Candidates = buf.Items()
		return rep, err
	}

	for {
		rec, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.Warn("scan stopped", "error", err, "scanned", rep.Scanned)
			return finish(err)
		}
		rep.Scanned++

		fields := match.Fields{
			Name:   opts.Encoder.Encode(rec.Name),
			Number: opts.Encoder.Encode(rec.Number),
		}
		if opts.Where != nil {
			keep, err := opts.Where.Keep(ctx, where.Input{
				Name:     rec.Name,
				Number:   rec.Number,
				T9Name:   fields.Name,
				T9Number: fields.Number,
			})
			if err != nil {
				return finish(err)
			}
			if !keep {
				rep.Skipped++
				continue
			}
		}

		if out := opts.Discipline.Exact(opts.Filter, fields); out.Matched() {
			s.log.Debug("exact", "name", rec.Name, "field", out.Field.String())
			rep.Exact++
			if emit != nil {
				if err := emit(rec); err != nil {
					return finish(err)
				}
			}
			continue
		}
		if rep.Exact > 0 || opts.Budget <= 0 {
			continue
		}
		if buf.Full() {
			s.log.Debug("buffer full", "name", rec.Name)
			continue
		}
		out, err := opts.Discipline.Fuzzy(opts.Filter, fields, opts.Budget)
		if err != nil {
			s.log.Warn("fuzzy matching aborted", "error", err)
			return finish(err)
		}
		if out.Matched() {
			s.log.Debug("candidate", "name", rec.Name, "mistakes", out.Mistakes)
			buf.Push(Candidate{Record: rec, Outcome: out})
		}
	}
	return finish(nil)
}
