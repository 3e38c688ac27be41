package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/typograf/internal/logging"
	"github.com/yaklabco/typograf/internal/ui/pretty"
	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/typo"
	"github.com/yaklabco/typograf/pkg/typograf"
)

// caretAtEnd places the caret after the last rune of the input.
const caretAtEnd = -1

type correctFlags struct {
	corrector  correctorFlags
	caret      int
	format     string
	trace      bool
	ruleFormat string
}

// correctOutput is the JSON form of a single correction pass.
type correctOutput struct {
	Text       string             `json:"text"`
	Caret      int                `json:"caret"`
	Delta      int                `json:"delta"`
	Applied    []typo.Application `json:"applied"`
	RuleErrors map[string]string  `json:"rule_errors,omitempty"`
}

func newCorrectCommand() *cobra.Command {
	flags := &correctFlags{}

	cmd := &cobra.Command{
		Use:   "correct [text...]",
		Short: "Correct text from arguments or stdin",
		Long:  correctLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrect(cmd, args, flags)
		},
	}

	addCorrectorFlags(cmd, &flags.corrector)
	cmd.Flags().IntVar(&flags.caret, "caret", caretAtEnd, "caret offset in runes (-1 = end of text)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "print the rules that fired to stderr")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in trace output: name, id, or combined")

	return cmd
}

const correctLongDescription = `Correct a piece of text and print the result.

The text is taken from the arguments, joined by spaces, or read from stdin
when no arguments are given. The JSON output also reports the adjusted
caret offset and every rule that fired.

Examples:
  typograf correct 'He said "hello" - twice...'
  echo '(c) 2024' | typograf correct
  typograf correct --locale en '"quoted"'
  typograf correct --format json --caret 5 'wait...'`

func runCorrect(cmd *cobra.Command, args []string, flags *correctFlags) error {
	if flags.format != formatText && flags.format != formatJSON {
		return fmt.Errorf("%w: unsupported format %q (want text or json)", ErrInvalidUsage, flags.format)
	}

	ruleFormat := config.RuleFormat(flags.ruleFormat)
	if !ruleFormat.IsValid() {
		return fmt.Errorf("%w: unsupported rule format %q", ErrInvalidUsage, flags.ruleFormat)
	}

	text, fromArgs, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	cliCfg := &config.Config{}
	flags.corrector.apply(cliCfg)

	ctx, cfg, err := loadConfig(cmd, cliCfg, flags.corrector.moveCaret(cmd))
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx)

	corrector, err := newCorrector(cfg)
	if err != nil {
		return err
	}

	caret := flags.caret
	if caret < 0 {
		caret = utf8.RuneCountInString(text)
	}

	res := corrector.Correct(text, caret)
	for _, id := range slices.Sorted(maps.Keys(res.RuleErrors)) {
		logger.Warn("rule failed", logging.FieldRule, id, logging.FieldError, res.RuleErrors[id])
	}
	logger.Debug("corrected text",
		logging.FieldDelta, res.Delta,
		logging.FieldCaret, res.Caret,
		logging.FieldRulesApplied, len(res.Applied),
	)

	if flags.trace {
		writeTrace(cmd, res, ruleFormat)
	}

	if flags.format == formatJSON {
		return writeCorrectJSON(cmd.OutOrStdout(), res)
	}

	out := res.Text
	if fromArgs {
		out += "\n"
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// readInput returns the text to correct and whether it came from arguments.
func readInput(cmd *cobra.Command, args []string) (string, bool, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), true, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", false, fmt.Errorf("%w: no input; pass text as arguments or pipe it on stdin", ErrInvalidUsage)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("read stdin: %w", err)
	}
	if !utf8.Valid(data) {
		return "", false, fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidUsage)
	}
	return string(data), false, nil
}

func writeTrace(cmd *cobra.Command, res typograf.Result, ruleFormat config.RuleFormat) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))

	var builder strings.Builder
	for _, app := range res.Applied {
		builder.WriteString(styles.FormatApplication(app, ruleFormat))
	}
	fmt.Fprint(cmd.ErrOrStderr(), builder.String())
}

func writeCorrectJSON(w io.Writer, res typograf.Result) error {
	out := correctOutput{
		Text:    res.Text,
		Caret:   res.Caret,
		Delta:   res.Delta,
		Applied: res.Applied,
	}
	if out.Applied == nil {
		out.Applied = []typo.Application{}
	}
	if len(res.RuleErrors) > 0 {
		out.RuleErrors = make(map[string]string, len(res.RuleErrors))
		for id, err := range res.RuleErrors {
			out.RuleErrors[id] = err.Error()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
