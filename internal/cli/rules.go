package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typograf/internal/ui/pretty"
	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/reporter"
	"github.com/yaklabco/typograf/pkg/typo"
	"github.com/yaklabco/typograf/pkg/typo/rules"
)

type rulesFlags struct {
	ruleFormat string
	format     string
	stage      string
}

const (
	formatText = "text"
	formatJSON = "json"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Stage       string   `json:"stage"`
	Description string   `json:"description"`
	Pattern     string   `json:"pattern"`
	Flags       string   `json:"flags,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the correction rules",
		Long: `List every correction rule in the order it is applied, with its
ID, name, stage, and description. Rules can be disabled by ID or name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", formatText,
		"output format: text, json")
	cmd.Flags().StringVar(&flags.stage, "stage", "",
		"only list rules of one stage: normalize, typographify")

	return cmd
}

func runRules(cmd *cobra.Command, flags *rulesFlags) error {
	ruleFormat := config.RuleFormat(flags.ruleFormat)
	if !ruleFormat.IsValid() {
		return fmt.Errorf("%w: unsupported rule format %q", ErrInvalidUsage, flags.ruleFormat)
	}

	var stages []*typo.Stage
	for _, stage := range rules.Stages() {
		if flags.stage == "" || flags.stage == stage.Name() {
			stages = append(stages, stage)
		}
	}
	if len(stages) == 0 {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidUsage, flags.stage)
	}

	switch flags.format {
	case formatJSON:
		return outputRulesJSON(cmd.OutOrStdout(), stages)
	case formatText:
		return outputRulesTable(cmd, stages, ruleFormat)
	default:
		return fmt.Errorf("%w: unsupported format %q (want text or json)", ErrInvalidUsage, flags.format)
	}
}

func outputRulesTable(cmd *cobra.Command, stages []*typo.Stage, ruleFormat config.RuleFormat) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	formatter := pretty.NewTableFormatter(styles, reporter.TerminalWidth(out))

	var rows []pretty.RuleRow
	for _, stage := range stages {
		for _, rule := range stage.Rules() {
			rows = append(rows, pretty.RuleRow{
				ID:          rule.ID(),
				Name:        config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
				Stage:       stage.Name(),
				Description: rule.Description(),
			})
		}
	}

	if _, err := io.WriteString(out, formatter.FormatRules(rows)); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	return nil
}

// outputRulesJSON outputs rules as a JSON array in pass order.
func outputRulesJSON(w io.Writer, stages []*typo.Stage) error {
	var infos []ruleInfo
	for _, stage := range stages {
		for _, rule := range stage.Rules() {
			infos = append(infos, ruleInfo{
				ID:          rule.ID(),
				Name:        rule.Name(),
				Stage:       stage.Name(),
				Description: rule.Description(),
				Pattern:     rule.Pattern(),
				Flags:       rule.Flags().String(),
				Tags:        rule.Tags(),
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
