package sve

// shiftField is an immediate shift amount split into the tszh:tszl:imm3 fields
// of the shift-by-immediate encodings.
//
// The concatenation tszh:tszl:imm3 is width+shift for left shifts and
// 2*width-shift for right shifts, so the position of its highest set bit also
// encodes the element size.
type shiftField struct {
	tszh, tszl, imm3 uint32
}

// encodeShift validates shift for the element size and direction and splits it.
// Left shifts accept [0, width-1] and right shifts [1, width].
func encodeShift(size ElementSize, shift uint32, left bool) (f shiftField, err error) {
	if err = sizeNot128(size); err != nil {
		return
	}
	width := size.Bits()
	var inverse uint32
	if left {
		if shift >= width {
			err = outOfRangef("left shift %d must be within [0, %d]", shift, width-1)
			return
		}
		inverse = shift
	} else {
		if shift == 0 || shift > width {
			err = outOfRangef("right shift %d must be within [1, %d]", shift, width)
			return
		}
		inverse = 2*width - shift
	}

	f.imm3 = inverse & 0b111
	switch size {
	case Element8:
		f.tszl = 0b01
	case Element16:
		f.tszl = 0b10 | (inverse>>3)&0b1
	case Element32:
		f.tszh = 0b01
		f.tszl = (inverse >> 3) & 0b11
	case Element64:
		f.tszh = 0b10 | (inverse>>5)&0b1
		f.tszl = (inverse >> 3) & 0b11
	}
	return
}

// value returns the concatenated tszh:tszl:imm3 field.
func (f shiftField) value() uint32 {
	return f.tszh<<5 | f.tszl<<3 | f.imm3
}

// encodeShiftLeftLong validates the shift of the SVE2 widening left shifts and
// returns the size marker and shift bits. size is the destination element size,
// and shift must be less than the width of the source elements.
func encodeShiftLeftLong(size ElementSize, shift uint32) (uint32, error) {
	if err := sizeWide(size); err != nil {
		return 0, err
	}
	half := (size - 1).Bits()
	if shift >= half {
		return 0, outOfRangef("left shift %d must be within [0, %d]", shift, half-1)
	}
	var marker uint32
	if size == Element64 {
		marker = 1 << 22
	} else {
		marker = (1 << 19) << (uint32(size) - 1)
	}
	return marker | shift<<16, nil
}
