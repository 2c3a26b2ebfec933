package main

import (
	"fmt"

	"github.com/rs/zerolog"

	md2mail "github.com/alnah/go-md2mail"
)

// runFooters lists the available footer sets, marking the configured one.
func runFooters(flags *footersFlags, env *Environment, log zerolog.Logger) error {
	cfg, err := loadConfig(flags.common.config, env, log)
	if err != nil {
		return err
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}

	names, err := md2mail.FooterSets(cfg.Assets.BasePath)
	if err != nil {
		return err
	}

	current := cfg.Footer.Name
	if current == "" {
		current = md2mail.DefaultFooterSet
	}
	for _, name := range names {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(env.Stdout, "%s %s\n", marker, name)
	}
	return nil
}
