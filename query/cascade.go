package query

import "fmt"

// AggregateKind names a distributed-cascade aggregation function (§3.4,
// §4.6).
type AggregateKind int

const (
	AggSum AggregateKind = iota
	AggAvg
	AggCount
	AggMax
	AggMin
)

func (k AggregateKind) String() string {
	switch k {
	case AggSum:
		return "SUM"
	case AggAvg:
		return "AVG"
	case AggCount:
		return "COUNT"
	case AggMax:
		return "MAX"
	case AggMin:
		return "MIN"
	default:
		return "?"
	}
}

// Aggregate is a cascade aggregation node: a planner-visible wrapper
// around a column expression, printable back into SQL for shipping to a
// shard query (§4.6).
type Aggregate struct {
	Kind   AggregateKind
	Column string
}

// SQL renders the aggregation as a SQL projection column.
func (a Aggregate) SQL() string {
	return fmt.Sprintf("%s(%s)", a.Kind, a.Column)
}

// CascadeRewrite is the two emitted shard-query aggregations plus the
// top-level combiner a distributed Avg rewrites into: AVG(x) becomes
// SUM(x) and COUNT(x) per shard, combined as sum/count at the top.
type CascadeRewrite struct {
	ShardAggregates []Aggregate
	Combine         func(partials []float64) float64
}

// RetrieveFromCascade rewrites agg for a distributed query (§4.6): Avg
// splits into Sum+Count shard columns combined by division at the top;
// Distinct present on a distributed query recurses into the operand
// instead of rewriting, since distinct aggregation cannot be partially
// pre-aggregated per shard; every other kind ships unchanged as a single
// shard projection column.
func RetrieveFromCascade(distinct bool, agg Aggregate) CascadeRewrite {
	if distinct {
		return CascadeRewrite{
			ShardAggregates: []Aggregate{agg},
			Combine:         func(p []float64) float64 { return sumFloats(p) },
		}
	}
	switch agg.Kind {
	case AggAvg:
		return CascadeRewrite{
			ShardAggregates: []Aggregate{
				{Kind: AggSum, Column: agg.Column},
				{Kind: AggCount, Column: agg.Column},
			},
			Combine: func(p []float64) float64 {
				if len(p) != 2 || p[1] == 0 {
					return 0
				}
				return p[0] / p[1]
			},
		}
	case AggSum, AggCount:
		return CascadeRewrite{
			ShardAggregates: []Aggregate{agg},
			Combine:         func(p []float64) float64 { return sumFloats(p) },
		}
	case AggMax:
		return CascadeRewrite{
			ShardAggregates: []Aggregate{agg},
			Combine:         func(p []float64) float64 { return extremum(p, true) },
		}
	case AggMin:
		return CascadeRewrite{
			ShardAggregates: []Aggregate{agg},
			Combine:         func(p []float64) float64 { return extremum(p, false) },
		}
	default:
		return CascadeRewrite{ShardAggregates: []Aggregate{agg}}
	}
}

func sumFloats(p []float64) float64 {
	var s float64
	for _, v := range p {
		s += v
	}
	return s
}

func extremum(p []float64, max bool) float64 {
	if len(p) == 0 {
		return 0
	}
	best := p[0]
	for _, v := range p[1:] {
		if (max && v > best) || (!max && v < best) {
			best = v
		}
	}
	return best
}
