package differ

import (
	"github.com/erraggy/routediff/internal/httputil"
	"github.com/erraggy/routediff/internal/keyset"
	"github.com/erraggy/routediff/node"
)

// comparePaths walks the candidate's paths in document order, then the
// paths only the baseline has.
func (s *session) comparePaths(candidate, baseline *node.Node) error {
	cpaths := objectOrNil(candidate)
	bpaths := objectOrNil(baseline)
	p := keyset.Split(cpaths, bpaths)

	for _, path := range cpaths.Keys() {
		var bitem *node.Node
		if bpaths.Has(path) {
			bitem = bpaths.Get(path)
		}
		if err := s.comparePathItems(path, cpaths.Get(path), bitem); err != nil {
			return err
		}
	}
	for _, path := range p.OnlyBaseline {
		if err := s.comparePathItems(path, nil, bpaths.Get(path)); err != nil {
			return err
		}
	}
	return nil
}

// comparePathItems classifies every operation of one path. Method keys are
// matched case insensitively and anything that is not an operation method
// (summary, description, parameters, servers, extensions) is ignored.
func (s *session) comparePathItems(path string, candidate, baseline *node.Node) error {
	citem, err := s.candidate.deref(candidate)
	if err != nil {
		return err
	}
	bitem, err := s.baseline.deref(baseline)
	if err != nil {
		return err
	}
	citem, bitem = objectOrNil(citem), objectOrNil(bitem)
	ckeys, bkeys := citem.Keys(), bitem.Keys()
	s.checkMethodKeys(path, "candidate", ckeys)
	s.checkMethodKeys(path, "baseline", bkeys)

	for _, method := range httputil.Methods {
		ckey, inCandidate := httputil.MatchMethod(method, ckeys)
		bkey, inBaseline := httputil.MatchMethod(method, bkeys)
		rt := routeKey{method: method, path: path}

		switch {
		case inCandidate && inBaseline:
			if err := s.compareOperations(rt, citem.Get(ckey), bitem.Get(bkey)); err != nil {
				return err
			}
		case inCandidate:
			s.added = append(s.added, Route{Method: method, Path: path, Schema: citem.Get(ckey)})
		case inBaseline:
			s.deleted = append(s.deleted, Route{Method: method, Path: path, Schema: bitem.Get(bkey)})
		}
	}
	return nil
}
