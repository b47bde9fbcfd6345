package services

import (
	"slices"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// rateGraph is a directed graph of currencies whose edges are the latest usable
// rate for each pair. A stored rate A->B also yields the derived edge B->A
// unless B->A is quoted directly.
type rateGraph struct {
	edges map[string]map[string]domain.ExchangeRate
}

func newRateGraph(rates []domain.ExchangeRate, asOf time.Time) *rateGraph {
	stored := make(map[string]domain.ExchangeRate)
	for _, r := range rates {
		if !r.IsActive || r.IsExpired(asOf) || r.RateDate.After(asOf) {
			continue
		}
		key := domain.PairKey(r.FromCurrencyCode, r.ToCurrencyCode)
		if cur, ok := stored[key]; !ok || r.IsNewerThan(cur) {
			stored[key] = r
		}
	}

	g := &rateGraph{edges: make(map[string]map[string]domain.ExchangeRate)}
	for _, r := range stored {
		g.add(r)
	}
	for _, r := range stored {
		if _, quoted := stored[domain.PairKey(r.ToCurrencyCode, r.FromCurrencyCode)]; !quoted {
			g.add(r.Reciprocal(""))
		}
	}
	return g
}

func (g *rateGraph) add(r domain.ExchangeRate) {
	out, ok := g.edges[r.FromCurrencyCode]
	if !ok {
		out = make(map[string]domain.ExchangeRate)
		g.edges[r.FromCurrencyCode] = out
	}
	out[r.ToCurrencyCode] = r
}

// neighbours lists the currencies reachable in one leg, preferred first and
// the rest alphabetically, so that searches are deterministic.
func (g *rateGraph) neighbours(code, preferred string) []string {
	out := make([]string, 0, len(g.edges[code]))
	for to := range g.edges[code] {
		out = append(out, to)
	}
	slices.SortFunc(out, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == preferred:
			return -1
		case b == preferred:
			return 1
		case a < b:
			return -1
		default:
			return 1
		}
	})
	return out
}

// bridgePath finds the shortest chain of at least two legs from -> ... -> to,
// with at most maxLegs legs. The direct pair is never used, and every
// intermediate currency must satisfy allowed. It returns nil when no chain exists.
func (g *rateGraph) bridgePath(from, to string, maxLegs int, preferred string, allowed func(string) bool) []domain.ExchangeRate {
	if from == to || maxLegs < 2 {
		return nil
	}

	type node struct {
		code string
		legs []domain.ExchangeRate
	}
	visited := map[string]bool{from: true}
	frontier := []node{{code: from}}

	for depth := 0; depth < maxLegs && len(frontier) > 0; depth++ {
		var next []node
		for _, n := range frontier {
			for _, nb := range g.neighbours(n.code, preferred) {
				if n.code == from && nb == to {
					continue
				}
				legs := append(slices.Clone(n.legs), g.edges[n.code][nb])
				if nb == to {
					return legs
				}
				if visited[nb] || (allowed != nil && !allowed(nb)) {
					continue
				}
				visited[nb] = true
				next = append(next, node{code: nb, legs: legs})
			}
		}
		frontier = next
	}
	return nil
}

// composeRate multiplies the rates of consecutive legs.
func composeRate(legs []domain.ExchangeRate) decimal.Decimal {
	rate := decimal.NewFromInt(1)
	for _, leg := range legs {
		rate = rate.Mul(leg.Rate)
	}
	return rate
}

// legPath returns the currencies visited by a chain of legs.
func legPath(legs []domain.ExchangeRate) []string {
	if len(legs) == 0 {
		return nil
	}
	path := []string{legs[0].FromCurrencyCode}
	for _, leg := range legs {
		path = append(path, leg.ToCurrencyCode)
	}
	return path
}
