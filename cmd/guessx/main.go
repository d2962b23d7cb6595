package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/guessx"
	"github.com/projectdiscovery/guessx/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	cfg, err := cliOpts.EngineConfig()
	if err != nil {
		gologger.Fatal().Msgf("failed to read estimator config got: %v", err)
	}

	engine, err := guessx.BuildEngine(&guessx.Options{
		Dictionaries: cliOpts.Dictionaries,
		Keyboards:    cliOpts.Keyboards,
		Config:       cfg,
		NoDefaults:   cliOpts.NoDefaults,
	})
	if err != nil {
		gologger.Fatal().Msgf("failed to build estimator got %v", err)
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	passwords := readPasswords(cliOpts)
	if cliOpts.Dedupe {
		guessx.MaxInMemoryDedupeSize = cliOpts.MaxDedupeMemory
		passwords = guessx.NewDedupe(passwords, inputSize(cliOpts)).GetResults()
	}

	start := time.Now()
	count := 0
	for res := range engine.ExecuteWithInputs(context.Background(), passwords, cliOpts.UserInputs...) {
		line, err := cliOpts.FormatResult(res)
		if err != nil {
			gologger.Error().Msgf("failed to marshal result got %v", err)
			continue
		}
		if _, err := output.Write([]byte(line + "\n")); err != nil {
			gologger.Fatal().Msgf("failed to write output got %v", err)
		}
		count++
	}
	gologger.Info().Msgf("Estimated %d passwords in %v", count, time.Since(start).Round(time.Millisecond))
}

// readPasswords streams flag passwords then stdin lines
func readPasswords(opts *runner.Options) <-chan string {
	ch := make(chan string, 100)
	go func() {
		defer close(ch)
		for _, v := range opts.Passwords {
			ch <- v
		}
		if !opts.Stdin {
			return
		}
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
				ch <- line
			}
		}
		if err := scanner.Err(); err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
	}()
	return ch
}

// inputSize is the expected byte size of all passwords, used to size dedupe
func inputSize(opts *runner.Options) int {
	size := 0
	for _, v := range opts.Passwords {
		size += len(v)
	}
	if opts.Stdin {
		if info, err := os.Stdin.Stat(); err == nil {
			size += int(info.Size())
		}
	}
	return size
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
