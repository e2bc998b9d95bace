package query

import "golang.org/x/exp/slices"

// IDScore is the document/score pair produced by a ranked evaluation
// (§3.5).
type IDScore struct {
	ID    DocID
	Score float64
}

// SortByID sorts pairs in ascending document-id order, in place (the
// default ordering, used by set operations).
func SortByID(pairs []IDScore) {
	slices.SortFunc(pairs, func(a, b IDScore) bool { return a.ID < b.ID })
}

// SortByScore sorts pairs in (score DESC, id ASC) order, in place, for
// ranked top-K presentation.
func SortByScore(pairs []IDScore) {
	slices.SortFunc(pairs, func(a, b IDScore) bool {
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.ID < b.ID
	})
}

// ScoreCombiner merges two present scores for the same document under a
// fuzzy And/Or.
type ScoreCombiner interface {
	Combine(a, b float64) float64
}

// ScoreNegator derives a complement score for fuzzy Not.
type ScoreNegator interface {
	Negate(a float64) float64
}

// MinMaxCombiner combines via min for And-like conjunction and max for
// Or-like disjunction, the fuzzy-logic textbook choice.
type MinMaxCombiner struct{ Max bool }

func (c MinMaxCombiner) Combine(a, b float64) float64 {
	if c.Max {
		if a > b {
			return a
		}
		return b
	}
	if a < b {
		return a
	}
	return b
}

// ProdSumCombiner combines via product for And and algebraic sum
// (a+b-a*b) for Or — the probabilistic-independence choice. AlgebraicOr
// selects algebraic sum vs arithmetic sum capped at 1 for the Or branch, the
// compile-time switch named in §3.5.
type ProdSumCombiner struct{ AlgebraicOr bool }

func (c ProdSumCombiner) CombineAnd(a, b float64) float64 { return a * b }

func (c ProdSumCombiner) CombineOr(a, b float64) float64 {
	if c.AlgebraicOr {
		return a + b - a*b
	}
	sum := a + b
	if sum > 1 {
		sum = 1
	}
	return sum
}

// MinMaxNegator implements ScoreNegator as 1-score.
type MinMaxNegator struct{}

func (MinMaxNegator) Negate(a float64) float64 { return 1 - a }

// FuzzyNot negates every score in pairs via negator, pure and
// allocation-free beyond the output slice.
func FuzzyNot(pairs []IDScore, negator ScoreNegator) []IDScore {
	out := make([]IDScore, len(pairs))
	for i, p := range pairs {
		out[i] = IDScore{ID: p.ID, Score: negator.Negate(p.Score)}
	}
	return out
}

// FuzzyAnd merges a and b (each assumed sorted by id) keeping only
// documents present in both, combining their scores via combiner.
func FuzzyAnd(a, b []IDScore, combiner ScoreCombiner) []IDScore {
	var out []IDScore
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].ID < b[j].ID:
			i++
		case a[i].ID > b[j].ID:
			j++
		default:
			out = append(out, IDScore{ID: a[i].ID, Score: combiner.Combine(a[i].Score, b[j].Score)})
			i++
			j++
		}
	}
	return out
}

// FuzzyOr merges a and b, keeping documents present in either, combining
// scores via combiner where both are present.
func FuzzyOr(a, b []IDScore, combiner ScoreCombiner) []IDScore {
	var out []IDScore
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].ID < b[j].ID:
			out = append(out, a[i])
			i++
		case a[i].ID > b[j].ID:
			out = append(out, b[j])
			j++
		default:
			out = append(out, IDScore{ID: a[i].ID, Score: combiner.Combine(a[i].Score, b[j].Score)})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// FuzzyAndNot keeps documents present in a but not in b.
func FuzzyAndNot(a, b []IDScore) []IDScore {
	var out []IDScore
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j].ID < a[i].ID {
			j++
		}
		if j < len(b) && b[j].ID == a[i].ID {
			i++
			continue
		}
		out = append(out, a[i])
		i++
	}
	return out
}
