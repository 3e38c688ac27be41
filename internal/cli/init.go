package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typograf/internal/configloader"
	"github.com/yaklabco/typograf/internal/logging"
	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/typo/rules"
)

const (
	defaultYAMLConfig = ".typograf.yml"
	defaultJSONConfig = ".typograf.json"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new typograf configuration file",
		Long: `Create a new .typograf.yml configuration file in the current directory
with sensible defaults. The file can be customized to pick the quote style,
disable rules, and choose which files are checked.

Examples:
  typograf init                      Create minimal .typograf.yml
  typograf init --full               Create full config with all rules documented
  typograf init --format json        Create .typograf.json instead
  typograf init --output custom.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all rules documented")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .typograf.yml or .typograf.json)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	if flags.format != "yaml" && flags.format != formatJSON {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrInvalidUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultYAMLConfig
		if flags.format == formatJSON {
			outputPath = defaultJSONConfig
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	existed := false
	if _, err := os.Stat(absPath); err == nil {
		existed = true
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
		Rules:  templateRules(),
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := configloader.WriteConfig(absPath, content, flags.force); err != nil {
		return err
	}

	if existed {
		logger.Warn("overwrote existing file", logging.FieldPath, outputPath)
	}
	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template includes all rules with documentation")
	}
	if flags.format == formatJSON {
		logger.Info("JSON files are not discovered automatically; pass the file with --config")
	}

	logger.Info("run 'typograf rules' to see all available rules")

	return nil
}

// templateRules describes every built-in rule for the full template.
func templateRules() []config.RuleInfo {
	var infos []config.RuleInfo
	for _, stage := range rules.Stages() {
		for _, rule := range stage.Rules() {
			infos = append(infos, config.RuleInfo{
				ID:          rule.ID(),
				Name:        rule.Name(),
				Description: rule.Description(),
				Stage:       stage.Name(),
				Tags:        rule.Tags(),
			})
		}
	}
	return infos
}
