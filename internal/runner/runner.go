package runner

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/guessx"
	"github.com/projectdiscovery/guessx/dictionary"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/spf13/cast"
)

type Options struct {
	Passwords       goflags.StringSlice // passwords to estimate
	UserInputs      goflags.StringSlice // user specific words (names, e-mails, sites)
	Dictionaries    []guessx.Source     // extra word lists
	Keyboards       []guessx.Source     // extra keyboard layouts
	NoDefaults      bool
	Output          string
	JSON            bool
	Meter           bool
	Dedupe          bool
	Config          string
	EstimatorConfig string
	GenerateConfig  string
	MaxLength       int
	Truncate        bool
	Verbose         bool
	Silent          bool
	MaxDedupeMemory int
	// Stdin is set when passwords are piped in, one per line
	Stdin bool
	// internal/unexported fields
	dicts     goflags.RuntimeMap
	keyboards goflags.RuntimeMap
}

func ParseFlags() *Options {
	var maxDedupeMemory string
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Password strength estimator using pattern matching and minimum-guess parsing.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Passwords, "password", "p", nil, "passwords to estimate (stdin, file, one per line)", goflags.FileStringSliceOptions),
		flagSet.StringSliceVarP(&opts.UserInputs, "user-input", "ui", nil, "user specific words to penalize, e-mails and urls are decomposed (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.RuntimeMapVarP(&opts.dicts, "dict", "d", nil, "ranked word list to load in name=path format (-d 'company=words.txt')"),
		flagSet.RuntimeMapVarP(&opts.keyboards, "keyboard", "kb", nil, "keyboard layout yaml to load in name=path format (-kb 'azerty=azerty.yaml')"),
		flagSet.BoolVarP(&opts.NoDefaults, "no-default", "nd", false, "do not load the embedded dictionaries and standard keyboards"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write estimates"),
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write output in jsonl format"),
		flagSet.BoolVar(&opts.Meter, "meter", false, "render a strength meter with crack times and feedback"),
		flagSet.BoolVarP(&opts.Dedupe, "dedupe", "dd", false, "estimate each distinct password once"),
		flagSet.StringVarP(&maxDedupeMemory, "dedupe-memory", "dm", "", "max in-memory dedupe size before using disk (kb, mb, gb, tb) (default mb)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display guessx version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `guessx cli config file (default '$HOME/.config/guessx/config.yaml')`),
		flagSet.StringVar(&opts.EstimatorConfig, "ec", "", fmt.Sprintf(`guessx estimator config file (default '$HOME/.config/guessx/estimator_%v.yaml')`, version)),
		flagSet.StringVarP(&opts.GenerateConfig, "generate-config", "gc", "", "write the default estimator config to the given file and exit"),
		flagSet.IntVar(&opts.MaxLength, "max-length", 0, "longest password accepted in characters (default from estimator config)"),
		flagSet.BoolVar(&opts.Truncate, "truncate", false, "estimate the allowed prefix of longer passwords instead of skipping them"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if opts.GenerateConfig != "" {
		if err := guessx.GenerateSample(opts.GenerateConfig); err != nil {
			gologger.Fatal().Msgf("failed to write estimator config to %v got %v", opts.GenerateConfig, err)
		}
		gologger.Info().Msgf("Estimator config written to %v", opts.GenerateConfig)
		os.Exit(0)
	}

	opts.MaxDedupeMemory = guessx.MaxInMemoryDedupeSize
	if len(maxDedupeMemory) > 0 {
		size, err := convertFileSizeToBytes(maxDedupeMemory)
		if err != nil {
			gologger.Fatal().Msgf("Could not parse dedupe-memory: %s\n", err)
		}
		opts.MaxDedupeMemory = size
	}

	opts.Dictionaries = sourcesFromMap(opts.dicts, dictionary.KindGeneric)
	opts.Keyboards = sourcesFromMap(opts.keyboards, "")

	opts.Stdin = fileutil.HasStdin()
	if len(opts.Passwords) == 0 && !opts.Stdin {
		gologger.Fatal().Msgf("guessx: no input found")
	}

	return opts
}

// sourcesFromMap turns name=path flag values into file sources
func sourcesFromMap(values goflags.RuntimeMap, kind dictionary.Kind) []guessx.Source {
	var sources []guessx.Source
	m := values.AsMap()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		filePath := cast.ToString(m[name])
		if filePath == "" {
			gologger.Warning().Msgf("ignoring %v: empty path", name)
			continue
		}
		if !fileutil.FileExists(filePath) {
			gologger.Fatal().Msgf("file %v of %v does not exist", filePath, name)
		}
		sources = append(sources, guessx.FileSource(name, kind, filePath))
	}
	return sources
}

// EngineConfig loads the estimator config and applies cli overrides
func (o *Options) EngineConfig() (*guessx.Config, error) {
	cfg := guessx.DefaultConfig.Clone()
	if o.EstimatorConfig != "" {
		loaded, err := guessx.NewConfig(o.EstimatorConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.MaxLength > 0 {
		cfg.MaxLength = o.MaxLength
	}
	if o.Truncate {
		cfg.Truncate = true
	}
	return cfg, nil
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

func convertFileSizeToBytes(maxFileSize string) (int, error) {
	maxFileSize = strings.ToLower(maxFileSize)
	// default to mb
	if size, err := strconv.Atoi(maxFileSize); err == nil {
		return size * 1024 * 1024, nil
	}
	if len(maxFileSize) < 3 {
		return 0, errorutil.New("invalid size value")
	}
	sizeUnit := maxFileSize[len(maxFileSize)-2:]
	size, err := strconv.Atoi(maxFileSize[:len(maxFileSize)-2])
	if err != nil {
		return 0, err
	}
	if size < 0 {
		return 0, errorutil.New("size cannot be negative")
	}
	switch sizeUnit {
	case "kb":
		return size * 1024, nil
	case "mb":
		return size * 1024 * 1024, nil
	case "gb":
		return size * 1024 * 1024 * 1024, nil
	case "tb":
		return size * 1024 * 1024 * 1024 * 1024, nil
	}
	return 0, errorutil.New("unsupported size unit")
}
