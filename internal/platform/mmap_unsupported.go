//go:build !unix

package platform

import (
	"fmt"
	"runtime"
)

var errUnsupported = fmt.Errorf("mmap unsupported on GOOS=%s", runtime.GOOS)

func mmapCodeSegment(int) ([]byte, error) {
	return nil, errUnsupported
}

func remapCodeSegment([]byte, int) ([]byte, error) {
	return nil, errUnsupported
}

func munmapCodeSegment([]byte) error {
	return errUnsupported
}

func mprotectRX([]byte) error {
	return errUnsupported
}
