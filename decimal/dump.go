package decimal

import "encoding/binary"

// DumpSize returns the padded byte length Dump produces for (precision, scale).
func DumpSize(precision, scale int32) int {
	id := precision - scale
	il := ceilDiv(id, 9)
	fl := ceilDiv(scale, 9)
	head := 9
	if il > 0 {
		head = int(id - (il-1)*9)
	}
	tail := 9
	if fl > 0 {
		tail = int(scale - (fl-1)*9)
	}
	n := 0
	for i := int32(0); i < il; i++ {
		if i == 0 {
			n += dig2bytes[head]
		} else {
			n += 4
		}
	}
	for j := int32(0); j < fl; j++ {
		if j == fl-1 {
			n += dig2bytes[tail]
		} else {
			n += 4
		}
	}
	for n%4 != 0 {
		n++
	}
	return n
}

// Dump serializes the value into a sort-preserving fixed-size byte string:
// memcmp over two Dump()s agrees with Compare(). The most significant
// emitted byte's top bit is flipped so two's-complement-style ordering
// works under an unsigned compare, and negative values additionally have
// every byte (including the padding) complemented.
func (d *Decimal) Dump() []byte {
	il := d.integerLimbCount()
	fl := d.fractionLimbCount()
	head := 9
	if il > 0 {
		head = int(d.integerDigits - (il-1)*9)
	}
	tail := 9
	if fl > 0 {
		tail = int(d.fractionDigits - (fl-1)*9)
	}

	var mask byte
	if d.negative {
		mask = 0xFF
	}

	out := make([]byte, 0, DumpSize(d.Precision(), d.Scale()))
	first := true
	writeLimb := func(value uint32, nbytes int) {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], value)
		chunk := append([]byte(nil), buf[4-nbytes:]...)
		if first {
			chunk[0] ^= 0x80
			first = false
		}
		for i := range chunk {
			chunk[i] ^= mask
		}
		out = append(out, chunk...)
	}

	for i := int32(0); i < il; i++ {
		nb := 4
		if i == 0 {
			nb = dig2bytes[head]
		}
		writeLimb(d.digits[i], nb)
	}
	for j := int32(0); j < fl; j++ {
		value := d.digits[il+j]
		nb := 4
		if j == fl-1 {
			nb = dig2bytes[tail]
			value /= pow10(uint32(9 - tail))
		}
		writeLimb(value, nb)
	}
	for len(out)%4 != 0 {
		out = append(out, mask)
	}
	return out
}

// SetDumpedValue reconstructs a Decimal of the given (precision, scale)
// from bytes produced by Dump.
func SetDumpedValue(precision, scale int32, data []byte) (*Decimal, error) {
	want := DumpSize(precision, scale)
	if len(data) != want {
		return nil, ErrBadArgument
	}

	id := precision - scale
	il := ceilDiv(id, 9)
	fl := ceilDiv(scale, 9)
	head := 9
	if il > 0 {
		head = int(id - (il-1)*9)
	}
	tail := 9
	if fl > 0 {
		tail = int(scale - (fl-1)*9)
	}

	negative := len(data) > 0 && data[0]&0x80 == 0
	var mask byte
	if negative {
		mask = 0xFF
	}

	digits := make([]uint32, il+fl)
	pos := 0
	first := true
	readLimb := func(nbytes int) uint32 {
		chunk := append([]byte(nil), data[pos:pos+nbytes]...)
		pos += nbytes
		for i := range chunk {
			chunk[i] ^= mask
		}
		if first {
			chunk[0] ^= 0x80
			first = false
		}
		var buf [4]byte
		copy(buf[4-nbytes:], chunk)
		return binary.BigEndian.Uint32(buf[:])
	}

	for i := int32(0); i < il; i++ {
		nb := 4
		if i == 0 {
			nb = dig2bytes[head]
		}
		digits[i] = readLimb(nb)
	}
	for j := int32(0); j < fl; j++ {
		nb := 4
		if j == fl-1 {
			nb = dig2bytes[tail]
		}
		v := readLimb(nb)
		if j == fl-1 {
			v *= pow10(uint32(9 - tail))
		}
		digits[il+j] = v
	}

	d := &Decimal{integerDigits: id, fractionDigits: scale, digits: digits, negative: negative}
	d.normalizeSign()
	return d, nil
}
