package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2mail "github.com/alnah/go-md2mail"
	"github.com/alnah/go-md2mail/internal/config"
	"github.com/alnah/go-md2mail/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// outputTarget is one mail body written for a document.
type outputTarget struct {
	Format md2mail.Format
	Path   string
}

// FileToConvert represents a single document and the bodies it produces.
type FileToConvert struct {
	InputPath string
	Outputs   []outputTarget
}

// outputLayout maps each format to the directory receiving its bodies.
type outputLayout map[md2mail.Format]string

// resolveFormats expands a format selection into the formats to produce.
func resolveFormats(s string) ([]md2mail.Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return []md2mail.Format{md2mail.FormatHTML}, nil
	case config.FormatBoth:
		return md2mail.Formats(), nil
	}
	f, err := md2mail.ParseFormat(s)
	if err != nil {
		return nil, err
	}
	return []md2mail.Format{f}, nil
}

// resolveLayout determines the output directory of each format.
// Without an explicit output the configured per-format directories apply;
// with one, a single format writes into it and both formats get
// html/ and text/ subdirectories.
func resolveLayout(flagOutput string, formats []md2mail.Format, cfg *config.Config) outputLayout {
	layout := make(outputLayout, len(formats))
	for _, f := range formats {
		switch {
		case flagOutput == "":
			layout[f] = configuredDir(f, cfg)
		case len(formats) == 1:
			layout[f] = flagOutput
		default:
			layout[f] = filepath.Join(flagOutput, string(f))
		}
	}
	return layout
}

// configuredDir returns the batch directory configured for a format.
func configuredDir(f md2mail.Format, cfg *config.Config) string {
	if f == md2mail.FormatText {
		return cfg.Output.TextDir
	}
	return cfg.Output.HTMLDir
}

// discoverFiles finds the markdown files of inputDir.
// Subdirectories are only visited when recursive is set; their structure
// is mirrored under each output directory.
func discoverFiles(inputDir string, recursive bool, layout outputLayout, formats []md2mail.Format) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputDir && !recursive {
				return fs.SkipDir
			}
			return nil
		}
		if !isMarkdown(path) {
			return nil
		}

		outputs := make([]outputTarget, 0, len(formats))
		for _, f := range formats {
			outputs = append(outputs, outputTarget{
				Format: f,
				Path:   resolveOutputPath(path, layout[f], inputDir, f),
			})
		}
		files = append(files, FileToConvert{InputPath: path, Outputs: outputs})
		return nil
	})

	return files, err
}

// singleFileTargets determines the outputs of a single input file.
// With one format, an output ending in that format's extension is used as
// the file path; otherwise the layout directories apply.
func singleFileTargets(inputPath, flagOutput string, formats []md2mail.Format, layout outputLayout) []outputTarget {
	if len(formats) == 1 && isFileOutput(flagOutput, formats[0]) {
		return []outputTarget{{Format: formats[0], Path: flagOutput}}
	}

	outputs := make([]outputTarget, 0, len(formats))
	for _, f := range formats {
		outputs = append(outputs, outputTarget{
			Format: f,
			Path:   resolveOutputPath(inputPath, layout[f], "", f),
		})
	}
	return outputs
}

// isFileOutput reports whether path names an output file rather than a
// directory. Dot-directories such as ".html" are directories.
func isFileOutput(path string, f md2mail.Format) bool {
	ext := f.Extension()
	return strings.HasSuffix(path, ext) && filepath.Base(path) != ext
}

// resolveOutputPath determines the output path of a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, f md2mail.Format) string {
	name := fileutil.StripExtension(inputPath) + f.Extension()

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// isMarkdown reports whether path has a markdown extension.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// statInput returns the file info of an input path.
func statInput(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return info, nil
}
