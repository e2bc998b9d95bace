package bits

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseExpGolomb parses the textual parameter description for a
// parameterized Exp-Golomb codec: a decimal Lambda in [0,32), with leading
// and trailing whitespace trimmed. An empty string defaults Lambda to 0.
func ParseExpGolomb(desc string) (ExpGolomb, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ExpGolomb{Lambda: 0}, nil
	}
	lambda, err := strconv.ParseUint(desc, 10, 32)
	if err != nil {
		return ExpGolomb{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoderParameterDescription, desc, err)
	}
	if lambda >= 32 {
		return ExpGolomb{}, fmt.Errorf("%w: lambda %d out of range [0,32)", ErrInvalidCoderArgument, lambda)
	}
	return ExpGolomb{Lambda: uint32(lambda)}, nil
}

// ParseExtendedGolomb parses "lambda:factor", where either component may be
// omitted ("", "lambda", ":factor", "lambda:factor"). Lambda defaults to 0,
// factor defaults to 1. Lambda must be in [0,32), factor in [1,32).
func ParseExtendedGolomb(desc string) (ExtendedGolomb, error) {
	desc = strings.TrimSpace(desc)
	lambdaStr, factorStr, _ := strings.Cut(desc, ":")
	lambdaStr = strings.TrimSpace(lambdaStr)
	factorStr = strings.TrimSpace(factorStr)

	lambda := uint64(0)
	if lambdaStr != "" {
		var err error
		lambda, err = strconv.ParseUint(lambdaStr, 10, 32)
		if err != nil {
			return ExtendedGolomb{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoderParameterDescription, desc, err)
		}
	}
	factor := uint64(1)
	if factorStr != "" {
		var err error
		factor, err = strconv.ParseUint(factorStr, 10, 32)
		if err != nil {
			return ExtendedGolomb{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoderParameterDescription, desc, err)
		}
	}
	if lambda >= 32 {
		return ExtendedGolomb{}, fmt.Errorf("%w: lambda %d out of range [0,32)", ErrInvalidCoderArgument, lambda)
	}
	if factor < 1 || factor >= 32 {
		return ExtendedGolomb{}, fmt.Errorf("%w: factor %d out of range [1,32)", ErrInvalidCoderArgument, factor)
	}
	return ExtendedGolomb{Lambda: uint32(lambda), Factor: uint32(factor)}, nil
}
