package rules_test

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typograf/pkg/typo"
	"github.com/yaklabco/typograf/pkg/typo/rules"
)

const nbsp = "\u00a0"

type golden struct {
	name      string
	in        string
	want      string
	wantDelta int
}

func newEngine(t *testing.T, style typo.QuoteStyle) *typo.Engine {
	t.Helper()

	engine, err := rules.NewEngine(style, typo.Options{MoveCaret: true})
	require.NoError(t, err)
	return engine
}

func runGolden(t *testing.T, engine *typo.Engine, tests []golden) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := engine.Correct(tt.in, 0)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.wantDelta, res.Delta)
			assert.Empty(t, res.RuleErrors)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	stage := rules.Normalize()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nbsp run", "a " + nbsp + " b", "a b"},
		{"lone nbsp", "a" + nbsp + "b", "a b"},
		{"narrow nbsp", "a\u202f b", "a b"},
		{"plain spaces kept", "a   b", "a   b"},
		{"double hyphen", "ab--cd", "ab-cd"},
		{"html comment open", "<!-- x", "<!-- x"},
		{"html comment close", "x -->", "x -->"},
		{"triple hyphen", "a---b", "a---b"},
		{"em dash", "a — b", "a - b"},
		{"en dash and minus", "1–2 −3", "1-2 -3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := stage.Apply(tt.in, nil)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, utf8.RuneCountInString(tt.want)-utf8.RuneCountInString(tt.in), res.Delta)
		})
	}
}

func TestTypographify_Signs(t *testing.T) {
	t.Parallel()

	runGolden(t, newEngine(t, typo.RussianQuotes), []golden{
		{"interval", "pages 10-20", "pages 10−20", 0},
		{"negative number", "-5", "−5", 0},
		{"plus minus", "+/-5", "±5", -2},
		{"division", "8 -:- 2", "8 ÷ 2", -2},
		{"hyphenated word", "well-known", "well-known", 0},
	})
}

func TestTypographify_Dashes(t *testing.T) {
	t.Parallel()

	runGolden(t, newEngine(t, typo.RussianQuotes), []golden{
		{"nbsp before dash", "a - b", "a" + nbsp + "— b", 0},
		{"dash after comma", "Hi, - there", "Hi, —" + nbsp + "there", 0},
		{"collapse spaces", "word  -  next", "word —" + nbsp + "next", -2},
		{"dash before digit", "x^-2", "x⁻²", -1},
		{"triple hyphen", "a---b", "a---b", 0},
		{"html comment", "<!-- note -->", "<!-- note -->", 0},
	})
}

func TestTypographify_Symbols(t *testing.T) {
	t.Parallel()

	runGolden(t, newEngine(t, typo.RussianQuotes), []golden{
		{"copyright", "(c)2024", "©2024", -2},
		{"copyright upper", "(C) Acme", "© Acme", -2},
		{"copyright cyrillic", "(с)", "©", -2},
		{"registered", "(r)", "®", -2},
		{"trademark", "(tm)", "™", -3},
		{"rouble", "(р)", "₽", -2},
		{"ellipsis", "wait...", "wait…", -2},
		{"four dots", "wait....", "wait....", 0},
		{"ellipsis guard", "wait….", "wait....", 2},
	})
}

func TestTypographify_Glyphs(t *testing.T) {
	t.Parallel()

	runGolden(t, newEngine(t, typo.RussianQuotes), []golden{
		{"size", "10x20", "10×20", 0},
		{"size cyrillic", "5х5", "5×5", 0},
		{"fraction", "3/4 cup", "¾ cup", -2},
		{"fraction tenth", "1/10", "⅒", -3},
		{"no glyph", "2/4 cup", "2/4 cup", 0},
		{"fraction inside number", "13/4", "13/4", 0},
		{"fraction then digit", "¾5", "3/45", 2},
		{"square", "m^2", "m²", -1},
		{"superscript run", "x^10", "x¹⁰", -1},
		{"degree", "20^o", "20°", -1},
		{"formula", "E=mc^2", "E=mc²", -1},
	})
}

func TestTypographify_Quotes(t *testing.T) {
	t.Parallel()

	runGolden(t, newEngine(t, typo.RussianQuotes), []golden{
		{"pairing", `"Hello" world"`, "«Hello» world»", 0},
		{"html attribute", `<a href="x">`, `<a href="x">`, 0},
		{"apostrophe", "don't", "don’t", 0},
		{"apostrophe s", "it's", "it’s", 0},
		{"o'clock", "o'clock", "o’clock", 0},
		{"minutes seconds", `5'30"`, "5′30″", 0},
	})

	runGolden(t, newEngine(t, typo.EnglishQuotes), []golden{
		{"english pairing", `"Hello"`, "“Hello”", 0},
	})
}

func TestTypographify_Spacing(t *testing.T) {
	t.Parallel()

	runGolden(t, newEngine(t, typo.RussianQuotes), []golden{
		{"preposition", "a b c", "a" + nbsp + "b c", 0},
		{"particle", "сказал ли он", "сказал" + nbsp + "ли он", 0},
	})
}

func TestTypographify_ParticleDash(t *testing.T) {
	t.Parallel()

	stage, err := rules.Typographify(typo.RussianQuotes)
	require.NoError(t, err)

	rule, ok := stage.Rule("particle-dash")
	require.True(t, ok)

	out, matches, delta, err := rule.Apply("что-то"+nbsp+"случилось", nil)
	require.NoError(t, err)
	assert.Equal(t, "что-то случилось", out)
	assert.Equal(t, 1, matches)
	assert.Zero(t, delta)
}

func TestCorrect_Caret(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, typo.RussianQuotes)

	tests := []struct {
		name      string
		in        string
		caret     int
		want      string
		wantCaret int
	}{
		{"double hyphen", "ab--cd", 4, "ab-cd", 3},
		{"copyright", "(c)2024", 3, "©2024", 1},
		{"trademark", "(tm)", 4, "™", 1},
		{"registered", "(r)", 3, "®", 1},
		{"ellipsis", "wait...", 7, "wait…", 5},
		{"dash spacing", "word  -  next", 13, "word —" + nbsp + "next", 11},
		{"clamped high", "ab--cd", 100, "ab-cd", 5},
		{"clamped low", "ab--cd", -1, "ab-cd", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := engine.Correct(tt.in, tt.caret)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.wantCaret, res.Caret)
		})
	}
}

func TestCorrect_WithoutCaret(t *testing.T) {
	t.Parallel()

	engine, err := rules.NewEngine(typo.RussianQuotes, typo.Options{MoveCaret: false})
	require.NoError(t, err)

	res := engine.Correct("ab--cd", 4)
	assert.Equal(t, "ab-cd", res.Text)
	assert.Equal(t, 4, res.Caret)
}

// corpus holds inputs whose corrected form is a fixed point.
//
//nolint:gochecknoglobals // Test fixture.
var corpus = []string{
	"ab--cd",
	"pages 10-20",
	"wait...",
	"wait....",
	"wait….",
	"(c) 2024 Acme",
	"3/4 cup",
	"¾5",
	`"Hello" world"`,
	`<a href="x">`,
	`5'30"`,
	"don't",
	"a - b",
	"Hi, - there",
	"x^-2",
	"E=mc^2",
	"20^o",
	"+/-5",
	"8 -:- 2",
	"a b c",
	"сказал ли он",
	"",
}

func TestCorrect_Idempotent(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, typo.RussianQuotes)

	for i, in := range corpus {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			t.Parallel()

			once := engine.Correct(in, 0).Text
			twice := engine.Correct(once, 0).Text
			assert.Equal(t, once, twice, "input %q", in)
		})
	}
}

// A hyphen padded by two spaces on each side settles only after a second
// pass: the first binds the dash to the next word, the second to the previous.
func TestCorrect_PaddedHyphenNotFixedPoint(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, typo.RussianQuotes)

	once := engine.Correct("word  -  next", 0).Text
	assert.Equal(t, "word —"+nbsp+"next", once)

	twice := engine.Correct(once, 0).Text
	assert.Equal(t, "word"+nbsp+"— next", twice)
}

func TestCorrect_DeltaMatchesLength(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, typo.RussianQuotes)
	inputs := append([]string{"word  -  next", "1/10 and 1/2", "(tm) (c) (r)..."}, corpus...)

	for _, in := range inputs {
		res := engine.Correct(in, 0)
		got := utf8.RuneCountInString(res.Text) - utf8.RuneCountInString(in)
		assert.Equal(t, got, res.Delta, "input %q", in)

		sum := 0
		for _, a := range res.Applied {
			sum += a.Delta
		}
		assert.Equal(t, res.Delta, sum, "input %q", in)
	}
}

func TestStages_Order(t *testing.T) {
	t.Parallel()

	stages := rules.Stages()
	require.Len(t, stages, 2)

	for i, prefix := range []string{"TN", "TY"} {
		for n, rule := range stages[i].Rules() {
			assert.Equal(t, fmt.Sprintf("%s%02d", prefix, n+1), rule.ID())
			assert.NotEmpty(t, rule.Name())
			assert.NotEmpty(t, rule.Description())
		}
	}

	assert.Equal(t, 3, stages[0].Len())
	assert.Equal(t, 30, stages[1].Len())
}

func TestTypographify_InvalidStyle(t *testing.T) {
	t.Parallel()

	_, err := rules.Typographify(typo.QuoteStyle{Left: `"`, Right: "»"})
	require.ErrorIs(t, err, typo.ErrInvalidQuoteStyle)

	_, err = rules.NewEngine(typo.QuoteStyle{}, typo.Options{})
	require.ErrorIs(t, err, typo.ErrInvalidQuoteStyle)
}

func TestTypographify_RegexMetaQuotes(t *testing.T) {
	t.Parallel()

	// Glyphs that are special inside patterns must still compile and pair.
	engine := newEngine(t, typo.QuoteStyle{Left: "[", Right: "]"})
	res := engine.Correct(`"x"`, 0)
	assert.Equal(t, "[x]", res.Text)
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg := rules.NewRegistry()
	assert.Len(t, reg.IDs(), 33)

	id, _, ok := reg.Resolve("em-dash")
	require.True(t, ok)
	assert.Equal(t, "TY04", id)
	assert.Equal(t, typo.StageTypographify, reg.StageOf(id))
	assert.Equal(t, typo.StageNormalize, reg.StageOf("TN02"))
}
