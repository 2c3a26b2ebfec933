package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	md2mail "github.com/alnah/go-md2mail"
	"github.com/alnah/go-md2mail/internal/config"
	"github.com/alnah/go-md2mail/internal/fileutil"
	"github.com/alnah/go-md2mail/internal/hints"
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment, log zerolog.Logger) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(args))
	}
	if flags.batch && len(args) > 0 {
		return fmt.Errorf("%w: --batch uses the configured input directory, got %s", ErrUsage, args[0])
	}

	cfg, err := loadConfig(flags.common.config, env, log)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	formats, err := resolveFormats(cfg.Format)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}
	log.Debug().Str("footer", conv.FooterSet()).Str("format", cfg.Format).Msg("converter ready")

	inputPath, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}
	info, err := statInput(inputPath)
	if err != nil {
		return err
	}

	var files []FileToConvert
	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return err
		}
		// A single document in a single format goes to stdout unless an
		// output path is given.
		if len(formats) == 1 && flags.output == "" {
			return convertToWriter(conv, inputPath, formats[0], env.Stdout)
		}
		layout := resolveLayout(flags.output, formats, cfg)
		files = []FileToConvert{{
			InputPath: inputPath,
			Outputs:   singleFileTargets(inputPath, flags.output, formats, layout),
		}}
	} else {
		layout := resolveLayout(flags.output, formats, cfg)
		files, err = discoverFiles(inputPath, flags.recursive, layout, formats)
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		if len(files) == 0 {
			if !flags.common.quiet {
				fmt.Fprintf(env.Stdout, "No markdown files found in %s\n", inputPath)
			}
			return nil
		}
	}

	workers := resolvePoolSize(cfg.Workers)
	log.Debug().Int("workers", workers).Int("files", len(files)).Msg("starting conversion")

	results := convertBatch(ctx, conv, workers, files)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failed, len(results))
	}
	return nil
}

// loadConfig loads the config named by flag or MD2MAIL_CONFIG, then applies
// the environment overrides. Without a name the defaults are used.
func loadConfig(flagConfig string, env *Environment, log zerolog.Logger) (*config.Config, error) {
	warnUnknownEnvVars(env.Environ(), log)
	envCfg := loadEnvConfig(env.Getenv)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		log.Debug().Str("config", name).Msg("config loaded")
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.footer != "" {
		cfg.Footer.Name = flags.footer
	}
}

// newConverter builds the library converter for cfg, adding hints to
// footer errors.
func newConverter(cfg *config.Config) (*md2mail.Converter, error) {
	conv, err := md2mail.NewConverter(
		md2mail.WithAssetPath(cfg.Assets.BasePath),
		md2mail.WithFooterSet(cfg.Footer.Name),
	)
	if err == nil {
		return conv, nil
	}

	switch {
	case errors.Is(err, md2mail.ErrFooterSetNotFound):
		available, _ := md2mail.FooterSets(cfg.Assets.BasePath)
		return nil, fmt.Errorf("%w%s", err, hints.ForFooterSetNotFound(available))
	case errors.Is(err, md2mail.ErrInvalidFooter) && strings.Contains(err.Error(), "placeholder"):
		return nil, fmt.Errorf("%w%s", err, hints.ForMissingPlaceholder())
	default:
		return nil, err
	}
}

// resolveInputPath determines the input path from args or config.
// Without an argument the configured batch directory must exist.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	dir := cfg.Input.DefaultDir
	if dir == "" {
		return "", ErrNoInput
	}
	if !fileutil.DirExists(dir) {
		return "", fmt.Errorf("%w: directory %s not found%s", ErrNoInput, dir, hints.ForInputDirectory(dir))
	}
	return dir, nil
}

// convertToWriter renders one document and prints the body to w.
func convertToWriter(conv CLIConverter, inputPath string, format md2mail.Format, w io.Writer) error {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	result, err := conv.Convert(md2mail.Input{Markdown: string(content), Format: format})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, result.Body)
	return err
}
