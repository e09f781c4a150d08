package differ

import (
	"fmt"
	"strings"

	"github.com/erraggy/routediff/internal/pathutil"
	"github.com/erraggy/routediff/node"
)

// routeKey identifies the operation a comparator is working on.
type routeKey struct {
	method string
	path   string
}

// phrase completes a comment, e.g. `added to GET "/pets" route`.
func (rt routeKey) phrase(action Action) string {
	var verb string
	switch action {
	case ActionAdded:
		verb = "added to"
	case ActionDeleted:
		verb = "deleted from"
	default:
		verb = "changed in"
	}
	return fmt.Sprintf(`%s %s "%s" route`, verb, strings.ToUpper(rt.method), rt.path)
}

// wholeSchema is the single record carried by an added or deleted construct.
func wholeSchema(action Action, schema *node.Node) []SchemaChange {
	if action == ActionDeleted {
		return []SchemaChange{{Type: ChangeTypeRemoved, Path: pathutil.Root, OldValue: schema}}
	}
	return []SchemaChange{{Type: ChangeTypeAdded, Path: pathutil.Root, NewValue: schema}}
}

func schemaKeyword(diff []SchemaChange) []KeywordChanges {
	return []KeywordChanges{{Keyword: "schema", Changes: diff}}
}

// compareOperations classifies one route present in both documents as
// unchanged or changed.
func (s *session) compareOperations(rt routeKey, candidate, baseline *node.Node) error {
	cop := objectOrNil(candidate)
	bop := objectOrNil(baseline)

	params, err := s.compareParameters(rt, cop.Get("parameters"), bop.Get("parameters"))
	if err != nil {
		return err
	}
	bodies, err := s.compareRequestBodies(rt, cop.Get("requestBody"), bop.Get("requestBody"))
	if err != nil {
		return err
	}
	responses, err := s.compareResponses(rt, cop.Get("responses"), bop.Get("responses"))
	if err != nil {
		return err
	}

	changes := make([]OperationChange, 0, len(params)+len(bodies)+len(responses))
	changes = append(changes, params...)
	changes = append(changes, bodies...)
	changes = append(changes, responses...)

	if len(changes) == 0 {
		s.unchanged = append(s.unchanged, Route{Method: rt.method, Path: rt.path, Schema: candidate})
		return nil
	}
	s.changed = append(s.changed, Route{
		Method:          rt.method,
		Path:            rt.path,
		CandidateSchema: candidate,
		BaselineSchema:  baseline,
		Changes:         changes,
	})
	return nil
}
