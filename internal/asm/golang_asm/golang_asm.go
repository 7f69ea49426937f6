// Package golang_asm adapts the golang-asm arm64 builder to asm.Sink, so SVE
// instructions can be emitted through the same assembler as the surrounding
// base arm64 code.
package golang_asm

import (
	"fmt"

	goasm "github.com/twitchyliquid64/golang-asm"
	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/arm64"

	"github.com/tetratelabs/sveasm/internal/asm"
)

// WordSink implements asm.Sink by appending a WORD pseudo-instruction per
// written word to a golang-asm builder.
type WordSink struct {
	b *goasm.Builder
	// n is the number of words written so far.
	n int
}

var _ asm.Sink = (*WordSink)(nil)

// NewWordSink returns an empty WordSink backed by a new arm64 builder.
func NewWordSink() (*WordSink, error) {
	b, err := goasm.NewBuilder("arm64", 1024)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new assembly builder: %w", err)
	}
	// The builder assembles the first prog as the function's TEXT and never
	// encodes it.
	text := b.NewProg()
	text.As = obj.ANOP
	b.AddInstruction(text)
	return &WordSink{b: b}, nil
}

// WriteUint32 implements asm.Sink.WriteUint32.
func (s *WordSink) WriteUint32(word uint32) {
	p := s.b.NewProg()
	p.As = arm64.AWORD
	p.To.Type = obj.TYPE_CONST
	p.To.Offset = int64(word)
	s.b.AddInstruction(p)
	s.n++
}

// Len implements asm.Sink.Len.
func (s *WordSink) Len() int {
	return 4 * s.n
}

// Assemble returns the machine code of every written word. The function
// alignment padding added by the builder is trimmed.
func (s *WordSink) Assemble() ([]byte, error) {
	code := s.b.Assemble()
	if len(code) < s.Len() {
		return nil, fmt.Errorf("BUG: assembled %d bytes for %d words", len(code), s.n)
	}
	return code[:s.Len()], nil
}
