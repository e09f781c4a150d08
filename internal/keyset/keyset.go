// Package keyset splits the keys of two JSON values into the keys they share
// and the keys only one of them has.
package keyset

import "github.com/erraggy/routediff/node"

// Partition is the result of comparing two key sets.
type Partition struct {
	// Common keys exist on both sides, in candidate order.
	Common []string
	// OnlyCandidate keys exist only on the candidate, in candidate order.
	OnlyCandidate []string
	// OnlyBaseline keys exist only on the baseline, in baseline order.
	OnlyBaseline []string
}

// Split partitions the child keys of candidate and baseline. A key is present
// when it exists, whatever its value. Objects contribute property names,
// arrays their indices, and anything else no keys.
func Split(candidate, baseline *node.Node) Partition {
	ck := candidate.ChildKeys()
	bk := baseline.ChildKeys()

	inBaseline := make(map[string]struct{}, len(bk))
	for _, k := range bk {
		inBaseline[k] = struct{}{}
	}
	inCandidate := make(map[string]struct{}, len(ck))

	var p Partition
	for _, k := range ck {
		inCandidate[k] = struct{}{}
		if _, ok := inBaseline[k]; ok {
			p.Common = append(p.Common, k)
		} else {
			p.OnlyCandidate = append(p.OnlyCandidate, k)
		}
	}
	for _, k := range bk {
		if _, ok := inCandidate[k]; !ok {
			p.OnlyBaseline = append(p.OnlyBaseline, k)
		}
	}
	return p
}
