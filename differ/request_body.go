package differ

import (
	"fmt"

	"github.com/erraggy/routediff/internal/keyset"
	"github.com/erraggy/routediff/internal/pathutil"
	"github.com/erraggy/routediff/node"
)

// compareRequestBodies compares two Request Body Objects media type by
// media type. A missing request body has no media types.
func (s *session) compareRequestBodies(rt routeKey, candidate, baseline *node.Node) ([]OperationChange, error) {
	cbody, err := s.candidate.deref(candidate)
	if err != nil {
		return nil, err
	}
	bbody, err := s.baseline.deref(baseline)
	if err != nil {
		return nil, err
	}
	ccontent := objectOrNil(objectOrNil(cbody).Get("content"))
	bcontent := objectOrNil(objectOrNil(bbody).Get("content"))
	s.checkMediaTypes(rt, ccontent)
	s.checkMediaTypes(rt, bcontent)

	p := keyset.Split(ccontent, bcontent)
	var changes []OperationChange

	for _, mt := range p.OnlyCandidate {
		changes = append(changes, requestBodyChange(rt, ActionAdded, mt,
			wholeSchema(ActionAdded, ccontent.Get(mt).Get("schema"))))
	}
	for _, mt := range p.OnlyBaseline {
		changes = append(changes, requestBodyChange(rt, ActionDeleted, mt,
			wholeSchema(ActionDeleted, bcontent.Get(mt).Get("schema"))))
	}
	for _, mt := range p.Common {
		traversal := pathutil.Pointer("paths", rt.path, rt.method, "requestBody", "content", mt)
		diff, err := s.diffSchema(ccontent.Get(mt).Get("schema"), bcontent.Get(mt).Get("schema"), traversal, pathutil.Root)
		if err != nil {
			return nil, err
		}
		if len(diff) > 0 {
			changes = append(changes, requestBodyChange(rt, ActionChanged, mt, diff))
		}
	}
	return changes, nil
}

func requestBodyChange(rt routeKey, action Action, mediaType string, diff []SchemaChange) OperationChange {
	return OperationChange{
		Type:      ChangeRequestBody,
		Action:    action,
		MediaType: mediaType,
		Changes:   schemaKeyword(diff),
		Comment:   fmt.Sprintf(`request body for "%s" media type has been %s`, mediaType, rt.phrase(action)),
	}
}
