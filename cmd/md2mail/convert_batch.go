package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	md2mail "github.com/alnah/go-md2mail"
	"github.com/alnah/go-md2mail/internal/fileutil"
)

// Sentinel errors for conversion operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrConversionFailed = errors.New("conversion failed")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(input md2mail.Input) (*md2mail.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2mail.Converter)(nil)

// ConversionResult holds the outcome of a single document.
type ConversionResult struct {
	InputPath   string
	OutputPaths []string
	Err         error
	Duration    time.Duration
}

// convertBatch processes files concurrently on a bounded set of workers.
// Files not yet started when ctx is canceled are reported with ctx.Err().
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(conv, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile renders one document in every requested format.
// The source is read once; bodies are written in format order and the
// first failure stops the remaining writes.
func convertFile(conv CLIConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: f.InputPath}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	for _, out := range f.Outputs {
		res, err := conv.Convert(md2mail.Input{Markdown: string(content), Format: out.Format})
		if err != nil {
			result.Err = err
			break
		}
		if err := fileutil.WriteFile(out.Path, res.Body); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			break
		}
		result.OutputPaths = append(result.OutputPaths, out.Path)
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failed documents.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		for _, out := range r.OutputPaths {
			if verbose {
				fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, out, r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", out)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
