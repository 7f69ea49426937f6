//go:build unix && !linux

package platform

func remapCodeSegment(code []byte, size int) ([]byte, error) {
	b, err := mmapCodeSegment(size)
	if err != nil {
		return nil, err
	}
	copy(b, code)
	mustMunmapCodeSegment(code)
	return b, nil
}

// mustMunmapCodeSegment panics instead of returning an error to the
// application: leaking the old block is less disruptive than leaking the new
// one and failing the write.
func mustMunmapCodeSegment(code []byte) {
	if err := munmapCodeSegment(code); err != nil {
		panic(err)
	}
}
