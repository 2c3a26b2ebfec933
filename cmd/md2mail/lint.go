package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	md2mail "github.com/alnah/go-md2mail"
)

// ErrLintIssues indicates lint found unsupported constructs.
var ErrLintIssues = errors.New("unsupported markdown found")

// runLint checks documents for constructs outside the mail dialect.
// Without arguments the configured input directory is checked.
func runLint(args []string, flags *lintFlags, env *Environment, log zerolog.Logger) error {
	if len(args) == 0 {
		cfg, err := loadConfig(flags.common.config, env, log)
		if err != nil {
			return err
		}
		dir, err := resolveInputPath(nil, cfg)
		if err != nil {
			return err
		}
		args = []string{dir}
	}

	paths, err := collectLintPaths(args, flags.recursive)
	if err != nil {
		return err
	}

	total := 0
	for _, path := range paths {
		content, err := os.ReadFile(path) // #nosec G304 -- user-provided or discovered path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}

		issues := md2mail.Lint(string(content))
		log.Debug().Str("file", path).Int("issues", len(issues)).Msg("linted")
		for _, issue := range issues {
			if issue.Line > 0 {
				fmt.Fprintf(env.Stdout, "%s:%d: %s\n", path, issue.Line, issue.Message)
			} else {
				fmt.Fprintf(env.Stdout, "%s: %s\n", path, issue.Message)
			}
		}
		total += len(issues)
	}

	if total > 0 {
		return fmt.Errorf("%w: %d issue(s) in %d file(s)", ErrLintIssues, total, len(paths))
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%d file(s) checked, no issues\n", len(paths))
	}
	return nil
}

// collectLintPaths expands directories into their markdown files.
func collectLintPaths(args []string, recursive bool) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := statInput(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := validateMarkdownExtension(arg); err != nil {
				return nil, err
			}
			paths = append(paths, arg)
			continue
		}

		files, err := discoverFiles(arg, recursive, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}
		for _, f := range files {
			paths = append(paths, f.InputPath)
		}
	}
	return paths, nil
}
