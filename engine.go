package guessx

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/guessx/dictionary"
	"github.com/projectdiscovery/guessx/keyboard"
	"github.com/projectdiscovery/guessx/matching"
	"github.com/projectdiscovery/guessx/scoring"
	errorutil "github.com/projectdiscovery/utils/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrLoad wraps dictionary.ErrLoad or keyboard.ErrLoad when a source cannot be loaded
	ErrLoad = errors.New("guessx: load error")
	// ErrInputTooLong is returned for passwords over the configured max-length
	ErrInputTooLong = errors.New("guessx: input too long")
	// ErrInvalidConfig is returned when the estimator config does not validate
	ErrInvalidConfig = errors.New("guessx: invalid config")
)

// UserInputsDictionary is the name of the per call dictionary built from user inputs
const UserInputsDictionary = "user_inputs"

// Engine Options
type Options struct {
	// word lists ranked by line, loaded in addition to the embedded ones
	Dictionaries []Source
	// yaml keyboard definitions, loaded in addition to the standard layouts
	Keyboards []Source
	// Config tunes the estimator, nil means DefaultConfig
	Config *Config
	// NoDefaults skips the embedded dictionaries and standard layouts
	NoDefaults bool
}

// Engine estimates password strength. It is immutable once built and safe
// for concurrent use.
type Engine struct {
	Options    *Options
	config     *Config
	store      *dictionary.Store
	keyboards  *keyboard.Set
	estimator  *scoring.Estimator
	matcher    *matching.Matcher
	thresholds scoring.Thresholds
	kinds      map[string]dictionary.Kind
}

// BuildEngine loads all sources and returns a ready engine. Any source that
// fails to load fails the build.
func BuildEngine(opts *Options) (*Engine, error) {
	if opts == nil {
		opts = &Options{}
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig.Clone()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dictSources := opts.Dictionaries
	if !opts.NoDefaults {
		dictSources = append(EmbeddedSources(), opts.Dictionaries...)
	}
	dicts, err := loadAll(dictSources, dictionary.ErrLoad, func(src Source, r io.Reader) (*dictionary.Dictionary, error) {
		d, err := dictionary.Load(src.Name, r)
		if err != nil {
			return nil, err
		}
		return d.WithKind(src.Kind), nil
	})
	if err != nil {
		return nil, err
	}
	layouts, err := loadAll(opts.Keyboards, keyboard.ErrLoad, func(src Source, r io.Reader) (*keyboard.Layout, error) {
		return keyboard.Load(src.Name, r)
	})
	if err != nil {
		return nil, err
	}
	if !opts.NoDefaults {
		layouts = append(keyboard.Standard(), layouts...)
	}

	e := &Engine{
		Options:    opts,
		config:     cfg,
		store:      dictionary.NewStore(dicts...),
		keyboards:  keyboard.NewSet(layouts...),
		thresholds: scoring.Thresholds(cfg.ScoreThresholds),
		kinds:      map[string]dictionary.Kind{},
	}
	for _, d := range e.store.All() {
		e.kinds[d.Name] = d.Kind
	}
	e.estimator = scoring.NewEstimator(cfg.Params, e.keyboards)
	e.matcher = matching.New(&matching.Options{
		Dictionaries:      e.store,
		Keyboards:         e.keyboards,
		Estimator:         e.estimator,
		MaxL33tSubs:       cfg.MaxL33tSubs,
		SequenceMaxDelta:  cfg.SequenceMaxDelta,
		DateMinYear:       cfg.DateMinYear,
		DateMaxYear:       cfg.DateMaxYear,
		ParallelThreshold: cfg.ParallelThreshold,
	})
	gologger.Verbose().Msgf("loaded %v dictionaries %v and %v keyboard layouts", len(dicts), e.store.Names(), len(layouts))
	return e, nil
}

// loadAll opens and parses every source concurrently, keeping source order
func loadAll[T any](sources []Source, sentinel error, load func(Source, io.Reader) (T, error)) ([]T, error) {
	out := make([]T, len(sources))
	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if src.Open == nil {
				return fmt.Errorf("%w: %w: %v: source has no opener", ErrLoad, sentinel, src.Name)
			}
			rc, err := src.Open()
			if err != nil {
				return fmt.Errorf("%w: %w: %v: %v", ErrLoad, sentinel, src.Name, err)
			}
			defer rc.Close()
			v, err := load(src, rc)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLoad, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Config returns a copy of the engine config
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Dictionaries returns the loaded dictionaries
func (e *Engine) Dictionaries() *dictionary.Store {
	return e.store
}

// Keyboards returns the loaded layouts
func (e *Engine) Keyboards() *keyboard.Set {
	return e.keyboards
}

// Estimate scores a password
func (e *Engine) Estimate(password string) (*Result, error) {
	return e.EstimateWithInputs(password)
}

// EstimateWithInputs scores a password, also matching it against words
// derived from user specific inputs (names, e-mails, sites)
func (e *Engine) EstimateWithInputs(password string, inputs ...string) (*Result, error) {
	runes := []rune(password)
	truncated := false
	if len(runes) > e.config.MaxLength {
		if !e.config.Truncate {
			return nil, fmt.Errorf("%w: %v runes, max-length is %v", ErrInputTooLong, len(runes), e.config.MaxLength)
		}
		runes = runes[:e.config.MaxLength]
		truncated = true
	}

	kinds := e.kinds
	var parse *scoring.Parse
	if extra := userInputsDictionary(inputs); extra != nil {
		kinds = make(map[string]dictionary.Kind, len(e.kinds)+1)
		for k, v := range e.kinds {
			kinds[k] = v
		}
		kinds[extra.Name] = extra.Kind
		parse = e.matcher.MostGuessable(runes, extra)
	} else {
		parse = e.matcher.MostGuessable(runes)
	}

	score := e.thresholds.Score(parse.Guesses)
	return &Result{
		Password:     string(runes),
		Guesses:      parse.Guesses,
		GuessesLog10: parse.GuessesLog10,
		Score:        score,
		Sequence:     parse.Sequence,
		CrackTimes:   crackTimes(parse.Guesses, e.config.CrackRates),
		Feedback:     getFeedback(score, parse.Sequence, kinds),
		Truncated:    truncated,
	}, nil
}

// Execute estimates every password received and writes results to the
// returned channel, passwords that cannot be estimated are skipped
func (e *Engine) Execute(ctx context.Context, passwords <-chan string) <-chan *Result {
	return e.ExecuteWithInputs(ctx, passwords)
}

// ExecuteWithInputs is Execute with the same user inputs matched for every password
func (e *Engine) ExecuteWithInputs(ctx context.Context, passwords <-chan string, inputs ...string) <-chan *Result {
	results := make(chan *Result, 100)
	go func() {
		defer close(results)
		for {
			select {
			case <-ctx.Done():
				return
			case password, ok := <-passwords:
				if !ok {
					return
				}
				res, err := e.EstimateWithInputs(password, inputs...)
				if err != nil {
					gologger.Warning().Msgf("skipping password: %v", err)
					continue
				}
				select {
				case <-ctx.Done():
					return
				case results <- res:
				}
			}
		}
	}()
	return results
}

// ExecuteWithWriter estimates passwords and writes one json line per result
// to writer
func (e *Engine) ExecuteWithWriter(passwords <-chan string, Writer io.Writer) error {
	if Writer == nil {
		return errorutil.NewWithTag("guessx", "writer destination cannot be nil")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for res := range e.Execute(ctx, passwords) {
		bin, err := res.JSON()
		if err != nil {
			return err
		}
		if _, err := Writer.Write(append(bin, '\n')); err != nil {
			return err
		}
	}
	return nil
}
