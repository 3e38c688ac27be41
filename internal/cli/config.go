package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typograf/internal/configloader"
	"github.com/yaklabco/typograf/internal/logging"
	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/typograf"
)

// correctorFlags are the flags shared by commands that build a corrector.
type correctorFlags struct {
	locale  string
	left    string
	right   string
	disable []string
	noCaret bool
}

func addCorrectorFlags(cmd *cobra.Command, flags *correctorFlags) {
	cmd.Flags().StringVar(&flags.locale, "locale", "", "quote style locale: ru or en")
	cmd.Flags().StringVar(&flags.left, "left", "", "override the left quote glyph")
	cmd.Flags().StringVar(&flags.right, "right", "", "override the right quote glyph")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().BoolVar(&flags.noCaret, "no-caret", false, "disable caret compensation")
}

// apply copies explicitly set flags onto the CLI layer of the configuration.
func (f *correctorFlags) apply(cfg *config.Config) {
	cfg.Locale = f.locale
	cfg.Quotes.Left = f.left
	cfg.Quotes.Right = f.right
	cfg.DisableRules = f.disable
}

// moveCaret returns the explicit caret choice, or nil when the flag was not given.
func (f *correctorFlags) moveCaret(cmd *cobra.Command) *bool {
	if !cmd.Flags().Changed("no-caret") {
		return nil
	}
	move := !f.noCaret
	return &move
}

// commandContext returns the command context, or a background context.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the final configuration for a command. The returned
// context carries the command logger.
func loadConfig(
	cmd *cobra.Command,
	cliCfg *config.Config,
	moveCaret *bool,
) (context.Context, *config.Config, error) {
	logger := logging.Default()
	ctx := logging.WithLogger(commandContext(cmd), logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return ctx, nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return ctx, nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
		MoveCaret:    moveCaret,
	})
	if err != nil {
		return ctx, nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldLocale, cfg.Locale,
		logging.FieldMoveCaret, cfg.MoveCaret,
		logging.FieldDisabled, cfg.DisabledRules(),
		logging.FieldJobs, cfg.Jobs,
	)

	return ctx, cfg, nil
}

// newCorrector builds a corrector from the resolved configuration.
func newCorrector(cfg *config.Config) (*typograf.Corrector, error) {
	opts, err := cfg.CorrectorOptions()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	corrector, err := typograf.New(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return corrector, nil
}
