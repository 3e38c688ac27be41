package config

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every rule with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// Rules describes the rules to document in a full template.
	Rules []RuleInfo
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Stage       string
	Tags        []string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateJSON(opts)
	}
	if opts.Full {
		return generateFullTemplate(opts), nil
	}
	return generateMinimalTemplate(), nil
}

const templatePreamble = `# Locale for the default quote style: ru («») or en (“”)
locale: ru

# Override the quote glyphs of the locale
# quotes:
#   left: "«"
#   right: "»"

# Keep the caret next to the text it pointed at after correction
move_caret: true

# Abort a single rule match after this long (0s = no limit)
# match_timeout: 1s

# File extensions checked when walking directories
extensions:
  - .md
  - .markdown
  - .txt

# Leave code spans, code blocks and raw HTML in Markdown untouched
markdown:
  skip_code: true

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")
	buf.WriteString(templatePreamble)
	buf.WriteString(`
# Rule configuration, keyed by rule ID or name
# rules:
#   em-dash:
#     enabled: false
#   TY28:
#     enabled: false
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`
#
# This template lists every rule. Rules run in ID order within their stage.

`)
	buf.WriteString(templatePreamble)
	buf.WriteString("\nrules:\n")

	rules := slices.Clone(opts.Rules)
	slices.SortFunc(rules, func(a, b RuleInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	for _, rule := range rules {
		fmt.Fprintf(&buf, "\n  # %s: %s (%s)\n", rule.ID, rule.Name, rule.Stage)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		buf.WriteString("    enabled: true\n")
	}

	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateJSON renders the default configuration as JSON. JSON has no
// comments, so a full template only adds the rules map.
func templateJSON(opts TemplateOptions) ([]byte, error) {
	def := NewConfig()

	cfg := map[string]any{
		"locale":     def.Locale,
		"move_caret": def.MoveCaret,
		"extensions": def.Extensions,
		"markdown": map[string]any{
			"skip_code": def.Markdown.SkipCode,
		},
		"ignore": []string{},
	}

	if opts.Full {
		rules := make(map[string]any, len(opts.Rules))
		for _, r := range opts.Rules {
			rules[r.ID] = map[string]any{"enabled": true}
		}
		cfg["rules"] = rules
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# typograf configuration
# See: https://github.com/yaklabco/typograf`
}
