package textdiff

// SpanKind tells whether a span is shared, removed, or inserted.
type SpanKind int

const (
	// SpanEqual is text present on both sides.
	SpanEqual SpanKind = iota
	// SpanDelete is text only in the original.
	SpanDelete
	// SpanInsert is text only in the corrected version.
	SpanInsert
)

// Span is a run of runes with one kind.
type Span struct {
	Kind SpanKind
	Text string
}

// maxInlineCells bounds the rune LCS table; larger middles are reported as
// one deletion followed by one insertion.
const maxInlineCells = 1 << 16

// Inline compares two lines rune by rune.
func Inline(before, after string) []Span {
	a, b := []rune(before), []rune(after)

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	var spans spanBuilder
	spans.add(SpanEqual, a[:prefix]...)

	midA, midB := a[prefix:len(a)-suffix], b[prefix:len(b)-suffix]
	if len(midA)*len(midB) > maxInlineCells {
		spans.add(SpanDelete, midA...)
		spans.add(SpanInsert, midB...)
	} else {
		lcs := longestCommonSubsequence(midA, midB)
		i, j, k := 0, 0, 0
		for i < len(midA) || j < len(midB) {
			if k < len(lcs) && i < len(midA) && j < len(midB) && midA[i] == lcs[k] && midB[j] == lcs[k] {
				spans.add(SpanEqual, midA[i])
				i, j, k = i+1, j+1, k+1
				continue
			}
			for i < len(midA) && (k >= len(lcs) || midA[i] != lcs[k]) {
				spans.add(SpanDelete, midA[i])
				i++
			}
			for j < len(midB) && (k >= len(lcs) || midB[j] != lcs[k]) {
				spans.add(SpanInsert, midB[j])
				j++
			}
		}
	}

	spans.add(SpanEqual, a[len(a)-suffix:]...)

	return spans.spans
}

// spanBuilder coalesces consecutive runes of one kind.
type spanBuilder struct {
	spans []Span
}

func (sb *spanBuilder) add(kind SpanKind, runes ...rune) {
	if len(runes) == 0 {
		return
	}
	if n := len(sb.spans); n > 0 && sb.spans[n-1].Kind == kind {
		sb.spans[n-1].Text += string(runes)
		return
	}
	sb.spans = append(sb.spans, Span{Kind: kind, Text: string(runes)})
}
