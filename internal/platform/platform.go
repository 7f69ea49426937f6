// Package platform maps the executable memory that encoded instructions are
// written to.
package platform

import "errors"

// MmapCodeSegment returns a read+write anonymous mapping of the given size.
//
// See https://man7.org/linux/man-pages/man2/mmap.2.html for mmap API and flags.
func MmapCodeSegment(size int) ([]byte, error) {
	if size == 0 {
		panic(errors.New("BUG: MmapCodeSegment with zero length"))
	}
	return mmapCodeSegment(size)
}

// RemapCodeSegment grows the mapping to size bytes, preserving its content.
// The old slice must not be used after a successful call.
func RemapCodeSegment(code []byte, size int) ([]byte, error) {
	if size < len(code) {
		panic(errors.New("BUG: RemapCodeSegment with size less than code"))
	}
	if len(code) == 0 {
		return mmapCodeSegment(size)
	}
	return remapCodeSegment(code, size)
}

// MunmapCodeSegment unmaps the given memory region.
func MunmapCodeSegment(code []byte) error {
	if len(code) == 0 {
		panic(errors.New("BUG: MunmapCodeSegment with zero length"))
	}
	return munmapCodeSegment(code)
}

// MprotectRX switches the mapping to read+execute.
func MprotectRX(code []byte) error {
	if len(code) == 0 {
		panic(errors.New("BUG: MprotectRX with zero length"))
	}
	return mprotectRX(code)
}
