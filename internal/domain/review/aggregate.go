package review

// Aggregate is the derived (count, sum) summary of an entity's reviews.
// Mean is always computed from the pair and never stored.
type Aggregate struct {
	Count int64
	Sum   int64
}

func (a Aggregate) Mean() float64 {
	if a.Count == 0 {
		return 0
	}
	return float64(a.Sum) / float64(a.Count)
}

func (a Aggregate) Add(r Rating) Aggregate {
	return Aggregate{Count: a.Count + 1, Sum: a.Sum + int64(r.Value())}
}

// AggregateOf folds ratings from scratch, in any order.
func AggregateOf(ratings ...Rating) Aggregate {
	var agg Aggregate
	for _, r := range ratings {
		agg = agg.Add(r)
	}
	return agg
}
