package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/fileutil"
)

// Output files are world-readable; created directories are not.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// CLIConverter is the part of *txt2md.Converter the commands use.
type CLIConverter interface {
	Convert(ctx context.Context, input txt2md.Input) (*txt2md.Result, error)
}

var _ CLIConverter = (*txt2md.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	HTMLPath   string // empty without --html
	Format     string
	Formatted  bool
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently. The converter is shared:
// it is safe for concurrent use, so workers only bound parallel file I/O.
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

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
				results[idx] = convertFile(ctx, conv, files[idx], params)
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

// convertFile reads, converts and writes one file. Failures are logged
// and recorded in the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		params.logger.ConversionFailed(f.InputPath, err, result.Duration)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	res, err := conv.Convert(ctx, txt2md.Input{
		Filename: f.InputPath,
		Content:  content,
		Metadata: params.metadata,
	})
	if err != nil {
		return fail(err)
	}
	result.Format = res.Format
	result.Formatted = res.Formatted

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err))
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, withTrailingNewline(res.Markdown), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	if params.html && res.HTML != nil {
		htmlPath := htmlOutputPath(f.OutputPath)
		if err := fileutil.WriteFileAtomic(htmlPath, res.HTML, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		result.HTMLPath = htmlPath
	}

	result.Duration = time.Since(start)
	params.logger.FileConverted(f.InputPath, f.OutputPath, res.Format, res.Formatted, result.Duration)
	return result
}

// withTrailingNewline ends non-empty output with a newline, as text files should.
func withTrailingNewline(s string) []byte {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return []byte(s)
}

// tally counts failed conversions; the rest succeeded.
func tally(results []ConversionResult) (ok, failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return len(results) - failed, failed
}

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	ok, failed := tally(results)
	out, errOut := newTheme(env.Stdout), newTheme(env.Stderr)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "%s %s: %v%s\n", errOut.failure.Render("FAILED"), r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s %s\n", r.InputPath, r.OutputPath,
				out.dim.Render(fmt.Sprintf("(%s, formatted=%t, %v)", r.Format, r.Formatted, r.Duration.Round(time.Millisecond))))
		} else {
			fmt.Fprintf(env.Stdout, "%s %s\n", out.success.Render("Created"), r.OutputPath)
		}
		if r.HTMLPath != "" {
			fmt.Fprintf(env.Stdout, "%s %s\n", out.success.Render("Created"), r.HTMLPath)
		}
	}

	if !quiet && len(results) > 1 {
		summaryStyle := out.success
		if failed > 0 {
			summaryStyle = out.warning
		}
		fmt.Fprintf(env.Stdout, "\n%s\n", summaryStyle.Render(fmt.Sprintf("%d succeeded, %d failed", ok, failed)))
	}

	return failed
}
