package markdown_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typograf/pkg/markdown"
)

func bracket(s string) string { return "[" + s + "]" }

func TestSplitter_Segments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain paragraph",
			input: "Hello -- world\n",
			want:  "[Hello -- world]\n",
		},
		{
			name:  "soft line breaks stay in one run",
			input: "one\ntwo\n",
			want:  "[one\ntwo]\n",
		},
		{
			name:  "blocks are separate runs",
			input: "# Title\n\nBody\n",
			want:  "# [Title]\n\n[Body]\n",
		},
		{
			name:  "code span is skipped",
			input: "Use `a--b` here\n",
			want:  "[Use ]`a--b`[ here]\n",
		},
		{
			name:  "fenced code is skipped",
			input: "Text\n\n```\na--b\n```\n",
			want:  "[Text]\n\n```\na--b\n```\n",
		},
		{
			name:  "html block is skipped",
			input: "<div>\n\"x\"\n</div>\n\nText\n",
			want:  "<div>\n\"x\"\n</div>\n\n[Text]\n",
		},
		{
			name:  "emphasis delimiters join runs",
			input: "\"*word*\" he said\n",
			want:  "[\"*word*\" he said]\n",
		},
		{
			name:  "link destination is skipped",
			input: "See [the docs](http://a--b.com) now\n",
			want:  "[See ][[the docs]](http://a--b.com)[ now]\n",
		},
		{
			name:  "front matter is skipped",
			input: "---\ntitle: \"x\"\n---\nBody\n",
			want:  "---\ntitle: \"x\"\n---\n[Body]\n",
		},
		{
			name:  "empty document",
			input: "",
			want:  "",
		},
	}

	splitter := markdown.NewSplitter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content := []byte(tt.input)
			segs, err := splitter.Segments(context.Background(), content)
			require.NoError(t, err)

			for i := 1; i < len(segs); i++ {
				assert.LessOrEqual(t, segs[i-1].Stop, segs[i].Start, "segments overlap")
			}

			assert.Equal(t, tt.want, string(markdown.Rewrite(content, segs, bracket)))
		})
	}
}

func TestSplitter_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := markdown.NewSplitter().Segments(ctx, []byte("text"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	content := []byte("abc def ghi")
	segs := []markdown.Segment{{Start: 0, Stop: 3}, {Start: 8, Stop: 11}}

	got := markdown.Rewrite(content, segs, strings.ToUpper)
	assert.Equal(t, "ABC def GHI", string(got))
	assert.Equal(t, 3, segs[0].Len())

	assert.Equal(t, "abc def ghi", string(markdown.Rewrite(content, nil, strings.ToUpper)))
}

func TestWhole(t *testing.T) {
	t.Parallel()

	assert.Nil(t, markdown.Whole(nil))
	assert.Equal(t, []markdown.Segment{{Start: 0, Stop: 4}}, markdown.Whole([]byte("text")))
}
