package main

import (
	"fmt"

	"github.com/alnah/go-notes2script/internal/yamlutil"
)

// runPresets lists every style preset with its settings as YAML.
// Custom asset directories are honored, so overridden records show.
func runPresets(args []string, env *Environment) error {
	flags, positional, err := parsePresetsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: presets takes no arguments", ErrTooManyArgs)
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	gen, err := newGenerator(cfg, env)
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(gen.Presets())
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
