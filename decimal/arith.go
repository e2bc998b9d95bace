package decimal

import "math/big"

// Add computes a+b and packs the exact result into (precision, scale).
// Same-sign operands add their magnitudes; opposite-sign operands
// subtract the smaller magnitude from the larger and take the larger's
// sign, per §4.5. Returns ErrNumericValueOutOfRange if the integer part
// doesn't fit; the fraction side is truncated silently when it doesn't.
func Add(a, b *Decimal, precision, scale int32) (*Decimal, error) {
	commonFL := a.fractionLimbCount()
	if b.fractionLimbCount() > commonFL {
		commonFL = b.fractionLimbCount()
	}
	am := scaleMagTo(a, commonFL)
	bm := scaleMagTo(b, commonFL)

	var sum *big.Int
	var neg bool
	if a.negative == b.negative {
		sum = new(big.Int).Add(am, bm)
		neg = a.negative
	} else {
		switch am.Cmp(bm) {
		case 0:
			sum = big.NewInt(0)
			neg = false
		case 1:
			sum = new(big.Int).Sub(am, bm)
			neg = a.negative
		default:
			sum = new(big.Int).Sub(bm, am)
			neg = b.negative
		}
	}

	targetIL := ceilDiv(precision-scale, 9)
	targetFL := ceilDiv(scale, 9)
	packed, err := repack(sum, commonFL, targetIL, targetFL)
	if err != nil {
		return nil, err
	}
	res := &Decimal{integerDigits: precision - scale, fractionDigits: scale, digits: packed, negative: neg}
	res.normalizeSign()
	return res, nil
}

// Sub computes a-b by negating b and delegating to Add.
func Sub(a, b *Decimal, precision, scale int32) (*Decimal, error) {
	return Add(a, b.Negated(), precision, scale)
}

// clampPrecisionScale reduces scale (never the integer part) to bring
// rawPrecision within maxPrecision, per §4.5's multiply policy: "excess is
// removed from the integer side first (error on overflow) or the
// fraction side". We always prefer trimming the fraction side; if that
// alone cannot make the value fit, the integer part itself exceeds the
// cap and that is an error.
func clampPrecisionScale(rawPrecision, rawScale, maxPrecision int32) (int32, int32, error) {
	if rawPrecision <= maxPrecision {
		return rawPrecision, rawScale, nil
	}
	excess := rawPrecision - maxPrecision
	if excess > rawScale {
		return 0, 0, ErrNumericValueOutOfRange
	}
	return maxPrecision, rawScale - excess, nil
}

// Multiply computes a*b, clamped to maxPrecision total digits. Raw
// precision/scale are p1+p2/s1+s2; when that exceeds maxPrecision the
// scale is reduced first, per §4.5.
func Multiply(a, b *Decimal, maxPrecision int32) (*Decimal, error) {
	product := new(big.Int).Mul(toBigInt(a.digits), toBigInt(b.digits))
	rawFL := a.fractionLimbCount() + b.fractionLimbCount()
	rawPrecision := a.Precision() + b.Precision()
	rawScale := a.Scale() + b.Scale()

	targetPrecision, targetScale, err := clampPrecisionScale(rawPrecision, rawScale, maxPrecision)
	if err != nil {
		return nil, err
	}
	targetIL := ceilDiv(targetPrecision-targetScale, 9)
	targetFL := ceilDiv(targetScale, 9)

	packed, err := repack(product, rawFL, targetIL, targetFL)
	if err != nil {
		return nil, err
	}
	res := &Decimal{
		integerDigits:  targetPrecision - targetScale,
		fractionDigits: targetScale,
		digits:         packed,
		negative:       a.negative != b.negative,
	}
	res.normalizeSign()
	return res, nil
}

// Divide computes a/b, truncating toward zero. Quotient scale follows
// §4.5's rule (s1 - s2 + p2 + 1, clamped into [0, maxPrecision]); the
// result's total precision is maxPrecision.
func Divide(a, b *Decimal, maxPrecision int32) (*Decimal, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}

	targetScale := a.Scale() - b.Scale() + b.Precision() + 1
	if targetScale < 0 {
		targetScale = 0
	}
	if targetScale > maxPrecision {
		targetScale = maxPrecision
	}
	targetPrecision := maxPrecision
	targetIL := ceilDiv(targetPrecision-targetScale, 9)
	targetFL := ceilDiv(targetScale, 9)

	aFL := a.fractionLimbCount()
	bFL := b.fractionLimbCount()
	numerator := toBigInt(a.digits)
	denominator := toBigInt(b.digits)

	shift := int64(9*bFL-9*aFL) + int64(targetScale)
	if shift >= 0 {
		numerator.Mul(numerator, pow10Big(shift))
	} else {
		denominator.Mul(denominator, pow10Big(-shift))
	}
	q := new(big.Int).Quo(numerator, denominator)
	// q holds the quotient scaled by 10^targetScale; widen it to whole
	// fraction limbs.
	q.Mul(q, pow10Big(int64(9*targetFL-targetScale)))

	packed, err := repack(q, targetFL, targetIL, targetFL)
	if err != nil {
		return nil, err
	}
	res := &Decimal{
		integerDigits:  targetPrecision - targetScale,
		fractionDigits: targetScale,
		digits:         packed,
		negative:       a.negative != b.negative,
	}
	res.normalizeSign()
	return res, nil
}
