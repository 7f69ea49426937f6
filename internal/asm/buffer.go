// Package asm holds the output side of the SVE encoder: the Sink contract that
// receives finished instruction words and CodeSegment, the executable memory it
// is usually backed by.
package asm

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/tetratelabs/sveasm/internal/platform"
)

// Sink receives encoded instruction words in program order.
//
// Implementations must append each word atomically with respect to Len, so that
// a caller can compute branch or literal offsets from the value of Len taken
// before emitting an instruction.
type Sink interface {
	// WriteUint32 appends one instruction word at the current position.
	WriteUint32(u uint32)
	// Len returns the current position in bytes.
	Len() int
}

var zero [16]byte

// CodeSegment represents a memory mapped segment where native CPU instructions
// are written.
//
// To write to the segment, the program must call Next to obtain a buffer view
// capable of writing data at the end of the segment. Next aligns the next write
// on 16 bytes.
//
// Instances of CodeSegment hold references to memory which is NOT managed by
// the garbage collector and therefore must be released *manually* by calling
// their Unmap method to prevent memory leaks.
//
// The zero value is a valid, empty code segment.
type CodeSegment struct {
	code []byte
	size int
}

// NewCodeSegment constructs a CodeSegment value from a byte slice.
//
// No validation is made that the byte slice is a memory mapped region which can
// be unmapped on Unmap.
func NewCodeSegment(code []byte) *CodeSegment {
	return &CodeSegment{code: code, size: len(code)}
}

// Map allocates a memory mapping of the given size to the code segment.
//
// The method errors if the segment is already backed by a memory mapping.
func (seg *CodeSegment) Map(size int) error {
	if seg.code != nil {
		return fmt.Errorf("code segment already initialized to memory mapping of size %d", len(seg.code))
	}
	b, err := platform.MmapCodeSegment(size)
	if err != nil {
		return err
	}
	seg.code = b
	seg.size = size
	return nil
}

// Unmap releases the underlying memory region held by the code segment,
// clearing its state back to an empty code segment.
func (seg *CodeSegment) Unmap() error {
	if seg.code != nil {
		if err := platform.MunmapCodeSegment(seg.code[:cap(seg.code)]); err != nil {
			return err
		}
		seg.code = nil
		seg.size = 0
	}
	return nil
}

// Finalize flips the written part of the segment to read+execute.
func (seg *CodeSegment) Finalize() error {
	if seg.size == 0 {
		return nil
	}
	return platform.MprotectRX(seg.code)
}

// Addr returns the address of the beginning of the code segment as a uintptr.
func (seg *CodeSegment) Addr() uintptr {
	if len(seg.code) > 0 {
		return uintptr(unsafe.Pointer(&seg.code[0]))
	}
	return 0
}

// Size returns the number of bytes written to the code segment.
func (seg *CodeSegment) Size() uintptr {
	return uintptr(seg.size)
}

// Len returns the length of the memory mapping backing the segment.
func (seg *CodeSegment) Len() int {
	return len(seg.code)
}

// Bytes returns a byte slice to the memory mapping of the code segment.
//
// The returned slice remains valid until more bytes are written to a buffer
// of the code segment, or Unmap is called.
func (seg *CodeSegment) Bytes() []byte {
	return seg.code
}

// Next returns a buffer pointed at the end of the code segment.
func (seg *CodeSegment) Next() Buffer {
	seg.write(zero[:(16-seg.size&15)&15])
	return Buffer{seg: seg, off: seg.size}
}

func (seg *CodeSegment) write(b []byte) {
	i := seg.size
	j := seg.size + len(b)
	if j > len(seg.code) {
		seg.grow(len(b))
	}
	seg.size = j
	copy(seg.code[i:j], b)
}

func (seg *CodeSegment) writeUint32(u uint32) {
	seg.size += 4
	if seg.size > len(seg.code) {
		seg.grow(0)
	}
	binary.LittleEndian.PutUint32(seg.code[seg.size-4:seg.size], u)
}

func (seg *CodeSegment) grow(n int) {
	size := len(seg.code)
	want := seg.size + n
	if size >= want {
		return
	}
	if size == 0 {
		size = 65536
	}
	for size < want {
		size *= 2
	}
	b, err := platform.RemapCodeSegment(seg.code, size)
	if err != nil {
		// Growing only fails when out of memory; a Sink cannot report errors.
		panic(err)
	}
	seg.code = b
}

// Buffer is a Sink writing at the end of a code segment.
//
// Buffers are passed by value, but they hold a reference to the code segment
// that they were created from.
type Buffer struct {
	seg *CodeSegment
	off int
}

var _ Sink = Buffer{}

// Cap returns the number of bytes which can be written before the segment grows.
func (buf Buffer) Cap() int {
	return len(buf.seg.code) - buf.off
}

// Len implements Sink.Len.
func (buf Buffer) Len() int {
	return buf.seg.size - buf.off
}

// Bytes returns the bytes written through this buffer.
func (buf Buffer) Bytes() []byte {
	i := buf.off
	j := buf.seg.size
	return buf.seg.Bytes()[i:j:j]
}

// Reset discards everything written through this buffer.
func (buf Buffer) Reset() {
	buf.seg.size = buf.off
}

// WriteUint32 implements Sink.WriteUint32.
func (buf Buffer) WriteUint32(u uint32) {
	buf.seg.writeUint32(u)
}
