// Package markdown finds the prose inside Markdown documents.
// Code spans, code blocks, raw HTML, link destinations, autolinks, and YAML
// front matter are left out, so corrections never touch them.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Segment is a half-open byte range [Start, Stop) of prose.
type Segment struct {
	Start int
	Stop  int
}

// Len returns the segment length in bytes.
func (s Segment) Len() int {
	return s.Stop - s.Start
}

// gapChars may separate two text nodes of one block without splitting the
// prose run: emphasis and strikethrough delimiters plus whitespace.
const gapChars = "*_~ \t\r\n"

// Splitter parses Markdown and reports its prose segments.
// A Splitter is safe for concurrent use.
type Splitter struct {
	md goldmark.Markdown
}

// NewSplitter creates a Splitter for GitHub Flavored Markdown.
func NewSplitter() *Splitter {
	return &Splitter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// piece is a text node together with the block that owns it.
type piece struct {
	seg   Segment
	block ast.Node
}

// Segments returns the prose segments of content in document order.
// Segments never overlap and never span two blocks.
func (s *Splitter) Segments(ctx context.Context, content []byte) ([]Segment, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("split cancelled: %w", err)
	}

	offset := frontMatterEnd(content)
	body := content[offset:]

	doc := s.md.Parser().Parse(text.NewReader(body))

	var pieces []piece
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if node.Segment.Len() > 0 {
				pieces = append(pieces, piece{
					seg:   Segment{Start: offset + node.Segment.Start, Stop: offset + node.Segment.Stop},
					block: owningBlock(node),
				})
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}

	return mergePieces(content, pieces), nil
}

// owningBlock returns the nearest block ancestor of an inline node.
func owningBlock(n ast.Node) ast.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == ast.TypeBlock {
			return p
		}
	}
	return nil
}

// mergePieces joins neighbouring pieces of one block when only delimiter
// characters separate them.
func mergePieces(content []byte, pieces []piece) []Segment {
	var segs []Segment
	var lastBlock ast.Node

	for _, p := range pieces {
		if n := len(segs); n > 0 && p.block == lastBlock && p.seg.Start >= segs[n-1].Stop &&
			onlyGap(content[segs[n-1].Stop:p.seg.Start]) {
			segs[n-1].Stop = p.seg.Stop
			continue
		}
		segs = append(segs, p.seg)
		lastBlock = p.block
	}

	return segs
}

// onlyGap reports whether b consists only of gapChars.
func onlyGap(b []byte) bool {
	return len(bytes.Trim(b, gapChars)) == 0
}

// frontMatterEnd returns the byte offset just past a leading YAML front
// matter block, or 0 when there is none.
func frontMatterEnd(content []byte) int {
	const fence = "---"

	first, rest, found := strings.Cut(string(content), "\n")
	if !found || strings.TrimRight(first, "\r") != fence {
		return 0
	}

	pos := len(first) + 1
	for rest != "" {
		line, tail, more := strings.Cut(rest, "\n")
		pos += len(line)
		if more {
			pos++
		}
		if trimmed := strings.TrimRight(line, "\r"); trimmed == fence || trimmed == "..." {
			return pos
		}
		rest = tail
	}

	return 0
}

// Rewrite applies fn to every segment of content and returns the result.
// Bytes outside the segments are copied unchanged.
func Rewrite(content []byte, segs []Segment, fn func(string) string) []byte {
	var buf bytes.Buffer
	buf.Grow(len(content))

	last := 0
	for _, seg := range segs {
		buf.Write(content[last:seg.Start])
		buf.WriteString(fn(string(content[seg.Start:seg.Stop])))
		last = seg.Stop
	}
	buf.Write(content[last:])

	return buf.Bytes()
}

// Whole returns a single segment covering all of content.
func Whole(content []byte) []Segment {
	if len(content) == 0 {
		return nil
	}
	return []Segment{{Start: 0, Stop: len(content)}}
}
