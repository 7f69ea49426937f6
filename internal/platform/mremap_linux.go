package platform

import "golang.org/x/sys/unix"

func remapCodeSegment(code []byte, size int) ([]byte, error) {
	return unix.Mremap(code, size, unix.MREMAP_MAYMOVE)
}
