package entities

import (
	"bytes"
	"encoding/gob"
	"slices"
)

type Quote struct {
	ProductID string
	Cost      float64
}

// Quotes is ordered by ascending cost.
type Quotes struct {
	Items        []Quote
	MaxDimension int
}

// Products eligible for urgent delivery.
var UrgentProducts = []string{"FPP", "PRM"}

// FilterQuotes keeps urgent products only when urgent is set and sorts the
// result by cost. Equal costs keep their original order.
func FilterQuotes(quotes []Quote, urgent bool) []Quote {
	res := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if urgent && !slices.Contains(UrgentProducts, q.ProductID) {
			continue
		}
		res = append(res, q)
	}
	slices.SortStableFunc(res, func(a, b Quote) int {
		switch {
		case a.Cost < b.Cost:
			return -1
		case a.Cost > b.Cost:
			return 1
		}
		return 0
	})
	return res
}

func (q Quotes) Cost(productID string) (float64, bool) {
	for _, it := range q.Items {
		if it.ProductID == productID {
			return it.Cost, true
		}
	}
	return 0, false
}

func (q *Quotes) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(q); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (q *Quotes) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(q)
}

func init() {
	gob.Register(Quotes{})
	gob.Register(Quote{})
}
