package decimal

import "math/bits"

// Hash combines the limbs with a 4-bit rotating accumulator, folding in
// integer digit count, scale and sign. Values equal under Compare but
// stored with different (precision, scale) therefore hash differently;
// callers that need a cross-layout equality hash should normalize first.
func (d *Decimal) Hash() uint64 {
	var h uint64
	for _, limb := range d.digits {
		h = bits.RotateLeft64(h, 4) ^ uint64(limb)
	}
	h = bits.RotateLeft64(h, 4) ^ uint64(d.integerDigits)
	h = bits.RotateLeft64(h, 4) ^ uint64(d.fractionDigits)
	if d.negative {
		h = bits.RotateLeft64(h, 4) ^ 1
	}
	return h
}
