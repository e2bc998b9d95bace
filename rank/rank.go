// Package rank implements the ranking score calculator contract (§4.3,
// §6.3): a one-shot IDF-like coefficient prepared per atomic query node,
// combined with a per-document TF-derived first-step score to produce a
// final per-document score in a second pass.
package rank

import (
	"fmt"
	"math"
)

// logSafe is math.Log guarded against non-positive input: it returns -Inf
// there, which Prepare's floor clamp below maps to 0.
func logSafe(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return math.Log(x)
}

// DocID identifies a document in the index.
type DocID = uint32

// Calculator is the ranking score calculator contract of §6.3.
type Calculator interface {
	// Prepare computes the one-shot coefficient from the collection-wide
	// document frequency (totalDF) and this term's document frequency (df).
	Prepare(totalDF, df uint64)
	// PrepareResult returns the coefficient Prepare computed.
	PrepareResult() float64
	// FirstStep computes the per-document TF-derived score term.
	FirstStep(tf uint32, doc DocID) (score float64, exists bool)
	// IsExtendedFirstStep reports whether ExtendedFirstStep should be used
	// instead of FirstStep (external/pluggable calculators).
	IsExtendedFirstStep() bool
	// ExtendedFirstStep is the hook used when IsExtendedFirstStep is true.
	ExtendedFirstStep(i int, doc DocID) float64
	// Describe renders a human-readable (optionally parameterized)
	// description, e.g. for EXPLAIN-style diagnostics.
	Describe(withParams bool) string
}

// TFIDF is the default Calculator: prepareResult is an Okapi-BM25-style
// inverse document frequency term, first_step is tf/(k1+tf).
type TFIDF struct {
	K1 float64

	totalDF       uint64
	df            uint64
	prepareResult float64
}

// NewTFIDF returns a TFIDF calculator with the conventional k1=1.2 term
// saturation constant.
func NewTFIDF() *TFIDF { return &TFIDF{K1: 1.2} }

func (c *TFIDF) Prepare(totalDF, df uint64) {
	c.totalDF = totalDF
	c.df = df
	if df == 0 || totalDF < df {
		c.prepareResult = 0
		return
	}
	// log((N-df+0.5)/(df+0.5)), floored at 0 so rare negative IDF (df>N/2)
	// doesn't invert ranking.
	x := (float64(totalDF) - float64(df) + 0.5) / (float64(df) + 0.5)
	v := logSafe(x)
	if v < 0 {
		v = 0
	}
	c.prepareResult = v
}

func (c *TFIDF) PrepareResult() float64 { return c.prepareResult }

func (c *TFIDF) FirstStep(tf uint32, _ DocID) (float64, bool) {
	if tf == 0 {
		return 0, false
	}
	ftf := float64(tf)
	return ftf / (c.K1 + ftf), true
}

func (c *TFIDF) IsExtendedFirstStep() bool                  { return false }
func (c *TFIDF) ExtendedFirstStep(int, DocID) float64 { return 1.0 }

func (c *TFIDF) Describe(withParams bool) string {
	if !withParams {
		return "TFIDF"
	}
	return fmt.Sprintf("TFIDF(k1=%.2f)", c.K1)
}

// SecondStep multiplies a first-step score by the prepared coefficient,
// the batch-evaluation second pass of §4.3.
func (c *TFIDF) SecondStep(firstStep float64) float64 {
	return firstStep * c.prepareResult
}
