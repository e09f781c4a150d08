package differ

import (
	"github.com/erraggy/routediff/internal/keyset"
	"github.com/erraggy/routediff/internal/pathutil"
	"github.com/erraggy/routediff/node"
)

// schemaFrame is one object or array pair being compared.
type schemaFrame struct {
	candidate *node.Node
	baseline  *node.Node
	traversal string
	output    string
	common    []string
	next      int
	entry     *memoEntry
}

// diffSchema compares a candidate schema with a baseline schema.
//
// traversal keys the memo cache and follows "$ref" jumps; output labels the
// records and does not. Every traversal path is compared once: a path that is
// still being compared (a reference cycle) contributes nothing, and a path
// compared earlier contributes its records rebased onto the new output path.
//
// The walk uses an explicit stack so schema depth does not grow the
// goroutine stack. Record order matches a depth-first walk that emits
// additions, then removals, then the changes under each shared key.
func (s *session) diffSchema(candidate, baseline *node.Node, traversal, output string) ([]SchemaChange, error) {
	if candidate.IsAbsent() && baseline.IsAbsent() {
		return nil, nil
	}

	var (
		stack  []*schemaFrame
		result []SchemaChange
	)

	emit := func(changes ...SchemaChange) {
		if len(stack) == 0 {
			result = append(result, changes...)
			return
		}
		top := stack[len(stack)-1].entry
		top.changes = append(top.changes, changes...)
	}

	enter := func(c, b *node.Node, traversal, output string) {
		if e, ok := s.memo[traversal]; ok {
			if e.done {
				emit(rebase(e.changes, e.output, output)...)
			}
			return
		}
		e := &memoEntry{output: output}
		s.memo[traversal] = e

		p := keyset.Split(c, b)
		for _, k := range p.OnlyCandidate {
			e.changes = append(e.changes, SchemaChange{
				Type:     ChangeTypeAdded,
				Path:     pathutil.Join(output, k),
				NewValue: c.Child(k),
			})
		}
		for _, k := range p.OnlyBaseline {
			e.changes = append(e.changes, SchemaChange{
				Type:     ChangeTypeRemoved,
				Path:     pathutil.Join(output, k),
				OldValue: b.Child(k),
			})
		}
		stack = append(stack, &schemaFrame{
			candidate: c,
			baseline:  b,
			traversal: traversal,
			output:    output,
			common:    p.Common,
			entry:     e,
		})
	}

	if isScalar(candidate) || isScalar(baseline) {
		if !candidate.Equal(baseline) {
			result = append(result, SchemaChange{
				Type:     ChangeTypeModified,
				Path:     output,
				OldValue: baseline,
				NewValue: candidate,
			})
		}
		return result, nil
	}

	enter(candidate, baseline, traversal, output)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next == len(f.common) {
			f.entry.done = true
			stack = stack[:len(stack)-1]
			emit(f.entry.changes...)
			continue
		}
		key := f.common[f.next]
		f.next++

		cv, bv := f.candidate.Child(key), f.baseline.Child(key)
		childTraversal := pathutil.Join(f.traversal, key)
		childOutput := pathutil.Join(f.output, key)

		if key == "$ref" {
			cref, cok := cv.AsString()
			bref, bok := bv.AsString()
			if cok && bok && cref == bref {
				var err error
				if cv, err = s.candidate.resolve(cref); err != nil {
					return nil, err
				}
				if bv, err = s.baseline.resolve(bref); err != nil {
					return nil, err
				}
				childTraversal = cref
				childOutput = f.output
			}
		}

		if cv.Equal(bv) {
			continue
		}
		if cv.IsContainer() && bv.IsContainer() {
			enter(cv, bv, childTraversal, childOutput)
			continue
		}
		f.entry.changes = append(f.entry.changes, SchemaChange{
			Type:     ChangeTypeModified,
			Path:     pathutil.Join(f.output, key),
			OldValue: bv,
			NewValue: cv,
		})
	}

	return result, nil
}

// isScalar reports whether n is present but not a container.
func isScalar(n *node.Node) bool {
	return !n.IsAbsent() && !n.IsContainer()
}

// rebase copies changes recorded under from so they read as if found under to.
func rebase(changes []SchemaChange, from, to string) []SchemaChange {
	if from == to {
		return changes
	}
	out := make([]SchemaChange, len(changes))
	for i, c := range changes {
		c.Path = pathutil.Rebase(c.Path, from, to)
		out[i] = c
	}
	return out
}
