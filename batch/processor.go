package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/glyph"
)

// Result records the outcome for one input file. Err is nil when the
// document was extracted and its JSON written.
type Result struct {
	Input        string
	Output       string
	Title        string
	HeadingCount int
	Err          error
}

// Summary aggregates a batch run. Results holds one entry per discovered
// file, in discovery order regardless of worker scheduling.
type Summary struct {
	Processed int
	Failed    int
	Duration  time.Duration
	Results   []Result
}

// Processor extracts outlines for every PDF under a directory, writing one
// JSON file per document.
type Processor struct {
	config Config
}

// New creates a Processor with the given configuration. Zero-value fields
// fall back to defaults.
func New(config Config) *Processor {
	config.defaults()
	return &Processor{config: config}
}

// Run discovers the PDF files under InputDir and processes each one through
// the extraction pipeline in a bounded worker pool. A failure is confined to
// its own Result; the batch always runs to completion unless ctx is
// cancelled, in which case files not yet started are marked failed with the
// context error.
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	files, err := p.discover()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	sem := make(chan struct{}, p.config.Workers)
	var wg sync.WaitGroup
	results := make([]Result, len(files))

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Input: file, Err: err}
			continue
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i] = Result{Input: file, Err: ctx.Err()}
			continue
		}

		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			results[idx] = p.processOne(path)
		}(i, file)
	}

	wg.Wait()

	summary := &Summary{
		Duration: time.Since(start),
		Results:  results,
	}
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Processed++
		}
	}
	return summary, nil
}

// processOne extracts a single document and writes its outline. No output
// file is written when any stage fails.
func (p *Processor) processOne(path string) Result {
	result := Result{Input: path}
	log := p.config.Logger

	var info *glyph.PreflightInfo
	if !p.config.SkipPreflight {
		var err error
		info, err = glyph.Preflight(path)
		if err != nil {
			result.Err = fmt.Errorf("preflight %s: %w", path, err)
			log.Error("preflight failed", "input", path, "error", err)
			return result
		}
	}

	o, err := outline.Open(path).Outline()
	if err != nil {
		result.Err = fmt.Errorf("extract %s: %w", path, err)
		log.Error("extraction failed", "input", path, "error", err)
		return result
	}

	out := p.outputPath(path)
	if err := o.WriteFile(out); err != nil {
		result.Err = fmt.Errorf("write %s: %w", out, err)
		log.Error("write failed", "input", path, "output", out, "error", err)
		return result
	}

	result.Output = out
	result.Title = o.Title
	result.HeadingCount = len(o.Entries)

	if result.HeadingCount == 0 && info != nil && info.HasImageStreams {
		log.Warn("no headings found, document is likely scanned",
			"input", path,
			"pages", info.PageCount)
	}

	log.Info("document processed",
		"input", path,
		"output", out,
		"title", o.Title,
		"headings", result.HeadingCount)
	return result
}

// discover lists the PDF files to process, sorted so a run visits them in a
// stable order.
func (p *Processor) discover() ([]string, error) {
	var files []string

	if p.config.Recursive {
		err := filepath.WalkDir(p.config.InputDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isPDF(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p.config.InputDir, err)
		}
	} else {
		entries, err := os.ReadDir(p.config.InputDir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p.config.InputDir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isPDF(entry.Name()) {
				files = append(files, filepath.Join(p.config.InputDir, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// outputPath maps input/report.pdf to OutputDir/report.json.
func (p *Processor) outputPath(input string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(p.config.OutputDir, stem+".json")
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
