package typograf

import (
	"sync"
	"unicode/utf8"
)

// Field is an editable text field with a caret, such as an input box.
// Offsets are in runes.
type Field interface {
	Value() string
	SetValue(text string)
	CaretOffset() int
	SetCaretOffset(offset int)
}

// MemoryField is an in-memory Field. The zero value is an empty field.
type MemoryField struct {
	mu    sync.Mutex
	value string
	caret int

	// caretReads and caretWrites count caret accesses.
	caretReads  int
	caretWrites int
}

// NewMemoryField returns a field holding value with the caret at offset.
func NewMemoryField(value string, offset int) *MemoryField {
	return &MemoryField{value: value, caret: offset}
}

// Value implements Field.
func (f *MemoryField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue implements Field.
func (f *MemoryField) SetValue(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = text
}

// CaretOffset implements Field.
func (f *MemoryField) CaretOffset() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.caretReads++
	return f.caret
}

// SetCaretOffset implements Field. The offset is clamped to the value length.
func (f *MemoryField) SetCaretOffset(offset int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.caretWrites++
	f.caret = max(0, min(offset, utf8.RuneCountInString(f.value)))
}

// CaretAccesses returns how many times the caret was read and written.
func (f *MemoryField) CaretAccesses() (reads, writes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.caretReads, f.caretWrites
}

// Binding ties a corrector to one field and remembers what it saw.
// Calls to Process must not overlap.
type Binding struct {
	corrector *Corrector
	field     Field
	source    string
	result    string
}

// Bind returns a binding for f, capturing its current value as the source.
func (c *Corrector) Bind(f Field) *Binding {
	return &Binding{
		corrector: c,
		field:     f,
		source:    f.Value(),
	}
}

// Process runs one correction pass over the field.
func (b *Binding) Process() Result {
	res := b.corrector.Process(b.field)
	b.result = res.Text
	return res
}

// Source returns the field value at bind time.
func (b *Binding) Source() string {
	return b.source
}

// Result returns the text produced by the last Process call.
func (b *Binding) Result() string {
	return b.result
}
