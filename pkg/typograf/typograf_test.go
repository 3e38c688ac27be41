package typograf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typograf/pkg/typo"
	"github.com/yaklabco/typograf/pkg/typograf"
)

func TestDefault_Correct(t *testing.T) {
	t.Parallel()

	c := typograf.Default()

	res := c.Correct("ab--cd", 4)
	assert.Equal(t, "ab-cd", res.Text)
	assert.Equal(t, 3, res.Caret)

	assert.Equal(t, "«Hello» world»", c.CorrectString(`"Hello" world"`))
	assert.Equal(t, "pages 10−20", c.CorrectString("pages 10-20"))
}

func TestCorrector_Correct_InvalidUTF8(t *testing.T) {
	t.Parallel()

	res := typograf.Default().Correct("\xff wait...", 9)
	assert.Equal(t, "\xff wait…", res.Text)
	assert.Equal(t, 7, res.Caret)
	assert.Equal(t, -2, res.Delta)
}

func TestNew_ZeroQuotesUseDefault(t *testing.T) {
	t.Parallel()

	c, err := typograf.New(typograf.Options{})
	require.NoError(t, err)
	assert.Equal(t, typo.RussianQuotes, c.Options().Quotes)
	assert.False(t, c.Options().MoveCaret)
}

func TestNew_InvalidQuotes(t *testing.T) {
	t.Parallel()

	_, err := typograf.New(typograf.Options{Quotes: typo.QuoteStyle{Left: "«", Right: "«"}})
	require.ErrorIs(t, err, typo.ErrInvalidQuoteStyle)
}

func TestNew_Disable(t *testing.T) {
	t.Parallel()

	opts := typograf.DefaultOptions()
	opts.Disable = []string{"ellipsis", "TY08"}

	c, err := typograf.New(opts)
	require.NoError(t, err)

	assert.Equal(t, "wait... (c)", c.CorrectString("wait... (c)"))
	assert.Equal(t, []string{"TY12", "TY08"}, c.Options().Disable)
	assert.Equal(t, 28, c.Engine().Typographify().Len())
}

func TestNew_DisableUnknown(t *testing.T) {
	t.Parallel()

	opts := typograf.DefaultOptions()
	opts.Disable = []string{"no-such-rule"}

	_, err := typograf.New(opts)
	require.ErrorIs(t, err, typo.ErrUnknownRule)
}

func TestNew_MatchTimeout(t *testing.T) {
	t.Parallel()

	opts := typograf.DefaultOptions()
	opts.MatchTimeout = time.Second

	c, err := typograf.New(opts)
	require.NoError(t, err)

	for _, r := range c.Engine().Typographify().Rules() {
		assert.Equal(t, time.Second, r.MatchTimeout())
	}
	assert.Equal(t, "wait…", c.CorrectString("wait..."))
}

func TestCorrector_Configure(t *testing.T) {
	t.Parallel()

	base := typograf.Default()

	english := typo.EnglishQuotes
	noCaret := false
	c, err := base.Configure(&english, &noCaret)
	require.NoError(t, err)

	assert.Equal(t, "“Hello”", c.CorrectString(`"Hello"`))
	assert.Equal(t, 4, c.Correct("ab--cd", 4).Caret)

	// The original is unchanged.
	assert.Equal(t, "«Hello»", base.CorrectString(`"Hello"`))
	assert.True(t, base.Options().MoveCaret)

	same, err := base.Configure(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, base.Options(), same.Options())

	bad := typo.QuoteStyle{Left: `"`, Right: "»"}
	_, err = base.Configure(&bad, nil)
	require.ErrorIs(t, err, typo.ErrInvalidQuoteStyle)
}

func TestCorrector_Process(t *testing.T) {
	t.Parallel()

	field := typograf.NewMemoryField("(c)2024", 3)
	res := typograf.Default().Process(field)

	assert.Equal(t, "©2024", res.Text)
	assert.Equal(t, "©2024", field.Value())
	assert.Equal(t, 1, field.CaretOffset())
}

func TestCorrector_Process_NoCaret(t *testing.T) {
	t.Parallel()

	opts := typograf.DefaultOptions()
	opts.MoveCaret = false
	c, err := typograf.New(opts)
	require.NoError(t, err)

	field := typograf.NewMemoryField("wait...", 7)
	c.Process(field)

	assert.Equal(t, "wait…", field.Value())
	reads, writes := field.CaretAccesses()
	assert.Zero(t, reads)
	assert.Zero(t, writes)
}

func TestBinding(t *testing.T) {
	t.Parallel()

	field := typograf.NewMemoryField("a...", 4)
	b := typograf.Default().Bind(field)

	assert.Equal(t, "a...", b.Source())
	assert.Empty(t, b.Result())

	b.Process()
	assert.Equal(t, "a…", b.Result())
	assert.Equal(t, "a...", b.Source())
	assert.Equal(t, 2, field.CaretOffset())

	field.SetValue("a… (tm)")
	field.SetCaretOffset(7)
	b.Process()
	assert.Equal(t, "a… ™", b.Result())
	assert.Equal(t, 4, field.CaretOffset())
}

func TestMemoryField_ClampsCaret(t *testing.T) {
	t.Parallel()

	var f typograf.MemoryField
	f.SetValue("abc")
	f.SetCaretOffset(10)
	assert.Equal(t, 3, f.CaretOffset())
	f.SetCaretOffset(-1)
	assert.Equal(t, 0, f.CaretOffset())
}
