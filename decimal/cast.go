package decimal

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

func isAllZeroDigits(s string) bool {
	for _, c := range s {
		if c != '0' {
			return false
		}
	}
	return true
}

// FromString parses a literal (optionally signed, optionally with a
// decimal point and an E exponent) into a Decimal of the given
// (precision, scale). An all-zero literal always yields a clean zero,
// regardless of layout. When the parsed value doesn't fit (precision,
// scale) and forAssign is true, ErrNumericValueOutOfRange is returned;
// otherwise (nil, nil) is returned to mean "cast to NULL".
func FromString(s string, precision, scale int32, forAssign bool) (*Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidCharacter
	}

	neg := false
	i := 0
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i++
	}
	rest := s[i:]
	if rest == "" {
		return nil, ErrInvalidCharacter
	}

	mantissa := rest
	exponent := 0
	if idx := strings.IndexAny(rest, "eE"); idx >= 0 {
		mantissa = rest[:idx]
		exp, err := strconv.Atoi(rest[idx+1:])
		if err != nil {
			return nil, ErrInvalidCharacter
		}
		exponent = exp
	}

	intPart := mantissa
	fracPart := ""
	if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
		intPart = mantissa[:dot]
		fracPart = mantissa[dot+1:]
	}
	if intPart == "" && fracPart == "" {
		return nil, ErrInvalidCharacter
	}
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return nil, ErrInvalidCharacter
		}
	}
	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return nil, ErrInvalidCharacter
		}
	}

	digits := intPart + fracPart
	pointPos := len(intPart) + exponent
	if pointPos < 0 {
		digits = strings.Repeat("0", -pointPos) + digits
		pointPos = 0
	}
	if pointPos > len(digits) {
		digits = digits + strings.Repeat("0", pointPos-len(digits))
	}
	intPart = digits[:pointPos]
	fracPart = digits[pointPos:]
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	if isAllZeroDigits(intPart) && isAllZeroDigits(fracPart) {
		return MakeZero(precision, scale), nil
	}

	fl := ceilDiv(int32(len(fracPart)), 9)
	fracPadded := fracPart + strings.Repeat("0", int(fl)*9-len(fracPart))
	magStr := intPart + fracPadded
	magBig, ok := new(big.Int).SetString(magStr, 10)
	if !ok {
		return nil, ErrInvalidCharacter
	}

	targetIL := ceilDiv(precision-scale, 9)
	targetFL := ceilDiv(scale, 9)
	packed, err := repack(magBig, fl, targetIL, targetFL)
	if err == nil && targetIL > 0 && packed[0] >= pow10(uint32(precision-scale-(targetIL-1)*9)) {
		err = ErrNumericValueOutOfRange
	}
	if err != nil {
		if forAssign {
			return nil, ErrNumericValueOutOfRange
		}
		return nil, nil
	}
	res := &Decimal{integerDigits: precision - scale, fractionDigits: scale, digits: packed, negative: neg}
	res.normalizeSign()
	return res, nil
}

// FromInt64 converts an integer value into (precision, scale).
func FromInt64(v int64, precision, scale int32, forAssign bool) (*Decimal, error) {
	neg := v < 0
	var uv uint64
	if neg {
		uv = uint64(-(v + 1)) + 1 // avoids overflow on math.MinInt64
	} else {
		uv = uint64(v)
	}
	return fromUint(uv, neg, precision, scale, forAssign)
}

// FromUint64 converts an unsigned integer value into (precision, scale).
func FromUint64(v uint64, precision, scale int32, forAssign bool) (*Decimal, error) {
	return fromUint(v, false, precision, scale, forAssign)
}

func fromUint(uv uint64, neg bool, precision, scale int32, forAssign bool) (*Decimal, error) {
	targetIL := ceilDiv(precision-scale, 9)
	targetFL := ceilDiv(scale, 9)
	mag := new(big.Int).SetUint64(uv)
	mag.Mul(mag, pow10Big(int64(9*targetFL)))
	packed, err := repack(mag, targetFL, targetIL, targetFL)
	if err != nil {
		if forAssign {
			return nil, ErrNumericValueOutOfRange
		}
		return nil, nil
	}
	res := &Decimal{integerDigits: precision - scale, fractionDigits: scale, digits: packed, negative: neg}
	res.normalizeSign()
	return res, nil
}

// FromFloat64 delegates to FromString via a fixed "%.14E" rendering, the
// same compromise the scalar double-to-decimal cast uses rather than
// reasoning about float64's binary mantissa directly.
func FromFloat64(v float64, precision, scale int32, forAssign bool) (*Decimal, error) {
	return FromString(fmt.Sprintf("%.14E", v), precision, scale, forAssign)
}

// ToInt64 truncates the fraction part and returns the integer value.
func (d *Decimal) ToInt64() (int64, error) {
	il := d.integerLimbCount()
	var v int64
	for i := int32(0); i < il; i++ {
		if v > (1<<63-1)/Base {
			return 0, ErrNumericValueOutOfRange
		}
		v = v*Base + int64(d.digits[i])
		if v < 0 {
			return 0, ErrNumericValueOutOfRange
		}
	}
	if d.negative {
		v = -v
	}
	return v, nil
}

// ToUint64 truncates the fraction part and returns the unsigned integer
// value; negative values other than zero are out of range.
func (d *Decimal) ToUint64() (uint64, error) {
	if d.negative && !d.IsZero() {
		return 0, ErrNumericValueOutOfRange
	}
	il := d.integerLimbCount()
	var v uint64
	for i := int32(0); i < il; i++ {
		if v > (^uint64(0))/Base {
			return 0, ErrNumericValueOutOfRange
		}
		v = v*Base + uint64(d.digits[i])
	}
	return v, nil
}

// ToFloat64 reconstructs a float64 approximation by dividing the fraction
// limbs' integer value by 10^(9*fractionLimbCount), per §4.5.
func (d *Decimal) ToFloat64() float64 {
	il := d.integerLimbCount()
	fl := d.fractionLimbCount()
	var intVal float64
	for i := int32(0); i < il; i++ {
		intVal = intVal*Base + float64(d.digits[i])
	}
	var fracVal float64
	for j := int32(0); j < fl; j++ {
		fracVal = fracVal*Base + float64(d.digits[il+j])
	}
	divisor := 1.0
	for j := int32(0); j < fl; j++ {
		divisor *= Base
	}
	result := intVal
	if fl > 0 {
		result += fracVal / divisor
	}
	if d.negative {
		result = -result
	}
	return result
}
