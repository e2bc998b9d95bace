package decimal

import (
	"bytes"
	"fmt"
	"math/big"
)

// Base is the limb radix: each limb holds up to 9 decimal digits.
const Base = 1_000_000_000

// DigitsPerLimb is the number of decimal digits a full limb holds.
const DigitsPerLimb = 9

// dig2bytes gives, for a partial limb holding n significant digits
// (0<=n<=9), the number of bytes needed to dump its value with one spare
// high bit free for the sign flag.
var dig2bytes = [10]int{0, 1, 1, 2, 2, 3, 3, 4, 4, 4}

var pow10Table = [10]uint32{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

func pow10(n uint32) uint32 { return pow10Table[n] }

func pow10Big(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

func ceilDiv(a, b int32) int32 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Decimal is a fixed (precision, scale) arbitrary-precision decimal value,
// stored as base-10^9 limbs: ceil(integerDigits/9) integer limbs (the
// most-significant one possibly partial) followed by
// ceil(fractionDigits/9) fraction limbs (the least-significant one
// possibly partial, zero-padded up to the limb boundary).
type Decimal struct {
	integerDigits  int32
	fractionDigits int32
	negative       bool
	digits         []uint32
}

// New allocates a zero Decimal for the given (precision, scale).
func New(precision, scale int32) *Decimal {
	id := precision - scale
	return &Decimal{
		integerDigits:  id,
		fractionDigits: scale,
		digits:         make([]uint32, ceilDiv(id, 9)+ceilDiv(scale, 9)),
	}
}

// MakeZero is an alias of New kept for readability at call sites that care
// about emphasizing the zero value rather than the allocation.
func MakeZero(precision, scale int32) *Decimal { return New(precision, scale) }

// SetToMaxDecimal fills every digit slot with the largest representable
// value for (precision, scale): interior limbs saturate to 999999999, the
// head integer limb and tail fraction limb saturate to as many nines as
// their own digit width allows.
func SetToMaxDecimal(precision, scale int32) *Decimal {
	d := New(precision, scale)
	il := ceilDiv(d.integerDigits, 9)
	fl := ceilDiv(d.fractionDigits, 9)
	for i := int32(0); i < il; i++ {
		if i == 0 {
			head := d.integerDigits - (il-1)*9
			d.digits[i] = pow10(uint32(head)) - 1
		} else {
			d.digits[i] = Base - 1
		}
	}
	for j := int32(0); j < fl; j++ {
		idx := il + j
		if j == fl-1 {
			tail := d.fractionDigits - (fl-1)*9
			d.digits[idx] = (pow10(uint32(tail)) - 1) * pow10(9-uint32(tail))
		} else {
			d.digits[idx] = Base - 1
		}
	}
	return d
}

func (d *Decimal) Precision() int32      { return d.integerDigits + d.fractionDigits }
func (d *Decimal) Scale() int32          { return d.fractionDigits }
func (d *Decimal) IntegerDigits() int32  { return d.integerDigits }
func (d *Decimal) IsNegative() bool      { return d.negative }
func (d *Decimal) integerLimbCount() int32  { return ceilDiv(d.integerDigits, 9) }
func (d *Decimal) fractionLimbCount() int32 { return ceilDiv(d.fractionDigits, 9) }

// IsZero reports whether the value is exactly zero.
func (d *Decimal) IsZero() bool {
	for _, limb := range d.digits {
		if limb != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (d *Decimal) Clone() *Decimal {
	nd := &Decimal{integerDigits: d.integerDigits, fractionDigits: d.fractionDigits, negative: d.negative}
	nd.digits = append([]uint32(nil), d.digits...)
	return nd
}

// Negated returns -d (zero stays positive).
func (d *Decimal) Negated() *Decimal {
	nd := d.Clone()
	if !nd.IsZero() {
		nd.negative = !nd.negative
	}
	return nd
}

func (d *Decimal) normalizeSign() {
	if d.IsZero() {
		d.negative = false
	}
}

// toBigInt interprets the limb array as a plain base-10^9 big integer:
// value * 10^(9*fractionLimbCount()).
func toBigInt(digits []uint32) *big.Int {
	n := new(big.Int)
	baseBig := big.NewInt(Base)
	for _, limb := range digits {
		n.Mul(n, baseBig)
		n.Add(n, big.NewInt(int64(limb)))
	}
	return n
}

func fromBigInt(n *big.Int, numLimbs int32) []uint32 {
	out := make([]uint32, numLimbs)
	tmp := new(big.Int).Set(n)
	baseBig := big.NewInt(Base)
	for i := int(numLimbs) - 1; i >= 0; i-- {
		m := new(big.Int)
		tmp.DivMod(tmp, baseBig, m)
		out[i] = uint32(m.Int64())
	}
	return out
}

// scaleMagTo returns |d| expressed as an integer equal to |d| * 10^(9*targetFL).
func scaleMagTo(d *Decimal, targetFL int32) *big.Int {
	m := toBigInt(d.digits)
	fl := d.fractionLimbCount()
	if targetFL > fl {
		m.Mul(m, pow10Big(int64(9*(targetFL-fl))))
	}
	return m
}

// repack fits a magnitude (representing a true value scaled by
// 10^(9*curFL)) into a limb array of exactly targetIL+targetFL limbs.
// Excess fraction limbs are silently truncated (curFL>targetFL); missing
// ones are zero-filled. If the value still doesn't fit targetIL+targetFL
// limbs after that, the error is ErrNumericValueOutOfRange: integer
// truncation is never silent.
func repack(mag *big.Int, curFL int32, targetIL, targetFL int32) ([]uint32, error) {
	m := new(big.Int).Set(mag)
	if curFL > targetFL {
		m.Quo(m, pow10Big(int64(9*(curFL-targetFL))))
	} else if curFL < targetFL {
		m.Mul(m, pow10Big(int64(9*(targetFL-curFL))))
	}
	ceiling := pow10Big(int64(9 * (int64(targetIL) + int64(targetFL))))
	if m.Cmp(ceiling) >= 0 {
		return nil, ErrNumericValueOutOfRange
	}
	return fromBigInt(m, targetIL+targetFL), nil
}

// Compare returns -1, 0 or 1 for a<b, a==b, a>b, irrespective of the two
// operands' configured precision/scale.
func Compare(a, b *Decimal) int {
	if a.IsZero() && b.IsZero() {
		return 0
	}
	if a.negative != b.negative {
		if a.negative {
			return -1
		}
		return 1
	}
	commonFL := a.fractionLimbCount()
	if b.fractionLimbCount() > commonFL {
		commonFL = b.fractionLimbCount()
	}
	c := scaleMagTo(a, commonFL).Cmp(scaleMagTo(b, commonFL))
	if a.negative {
		c = -c
	}
	return c
}

// String renders the decimal in plain fixed-point notation.
func (d *Decimal) String() string {
	il := d.integerLimbCount()
	fl := d.fractionLimbCount()

	var sb bytes.Buffer
	if d.negative {
		sb.WriteByte('-')
	}

	intDigits := make([]byte, 0, il*9)
	for i := int32(0); i < il; i++ {
		width := 9
		if i == 0 {
			width = int(d.integerDigits - (il-1)*9)
		}
		intDigits = append(intDigits, []byte(fmt.Sprintf("%0*d", width, d.digits[i]))...)
	}
	intDigits = bytes.TrimLeft(intDigits, "0")
	if len(intDigits) == 0 {
		intDigits = []byte("0")
	}
	sb.Write(intDigits)

	if d.fractionDigits > 0 {
		sb.WriteByte('.')
		fracDigits := make([]byte, 0, fl*9)
		for j := int32(0); j < fl; j++ {
			fracDigits = append(fracDigits, []byte(fmt.Sprintf("%09d", d.digits[il+j]))...)
		}
		sb.Write(fracDigits[:d.fractionDigits])
	}
	return sb.String()
}
