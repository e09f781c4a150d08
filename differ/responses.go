package differ

import (
	"fmt"

	"github.com/erraggy/routediff/internal/httputil"
	"github.com/erraggy/routediff/internal/pathutil"
	"github.com/erraggy/routediff/node"
)

// responseSide is one document's view of a Responses Object with every
// Response and Header Object dereferenced.
type responseSide struct {
	h     docHandle
	codes []string
	resp  map[string]*node.Node
}

func (s *session) responseSide(h docHandle, rt routeKey, responses *node.Node) (responseSide, error) {
	side := responseSide{h: h, resp: make(map[string]*node.Node)}
	for _, code := range objectOrNil(responses).Keys() {
		if httputil.IsExtension(code) {
			continue
		}
		if !httputil.ValidateStatusCode(code) {
			s.log.Debug("unexpected status code", "method", rt.method, "path", rt.path, "status", code)
		}
		r, err := h.deref(responses.Get(code))
		if err != nil {
			return responseSide{}, err
		}
		side.codes = append(side.codes, code)
		side.resp[code] = objectOrNil(r)
		s.checkMediaTypes(rt, side.resp[code].Get("content"))
	}
	return side, nil
}

// header returns the dereferenced Header Object name under status code, or
// nil when there is none.
func (r responseSide) header(code, name string) (*node.Node, error) {
	h := r.resp[code].Get("headers").Get(name)
	if !present(h) {
		return nil, nil
	}
	return r.h.deref(h)
}

// media returns the Media Type Object mt under status code, or nil.
func (r responseSide) media(code, mt string) *node.Node {
	m := r.resp[code].Get("content").Get(mt)
	if !present(m) {
		return nil
	}
	return m
}

// compareResponses walks the headers and content of every status code
// separately, so a status code present on one side only yields one record
// per header and media type.
func (s *session) compareResponses(rt routeKey, candidate, baseline *node.Node) ([]OperationChange, error) {
	if !present(candidate) && !present(baseline) {
		return nil, nil
	}
	cside, err := s.responseSide(s.candidate, rt, candidate)
	if err != nil {
		return nil, err
	}
	bside, err := s.responseSide(s.baseline, rt, baseline)
	if err != nil {
		return nil, err
	}

	var changes []OperationChange

	for _, code := range cside.codes {
		for _, name := range objectOrNil(cside.resp[code].Get("headers")).Keys() {
			ch, err := cside.header(code, name)
			if err != nil {
				return nil, err
			}
			if ch == nil {
				continue
			}
			bh, err := bside.header(code, name)
			if err != nil {
				return nil, err
			}
			if bh == nil {
				changes = append(changes, headerChange(rt, ActionAdded, code, name,
					wholeSchema(ActionAdded, ch.Get("schema"))))
				continue
			}
			traversal := pathutil.Pointer("paths", rt.path, rt.method, "responses", code, "headers", name)
			diff, err := s.diffSchema(ch.Get("schema"), bh.Get("schema"), traversal, pathutil.Root)
			if err != nil {
				return nil, err
			}
			if len(diff) > 0 {
				changes = append(changes, headerChange(rt, ActionChanged, code, name, diff))
			}
		}

		for _, mt := range objectOrNil(cside.resp[code].Get("content")).Keys() {
			cm := cside.media(code, mt)
			if cm == nil {
				continue
			}
			bm := bside.media(code, mt)
			if bm == nil {
				changes = append(changes, responseBodyChange(rt, ActionAdded, code, mt,
					wholeSchema(ActionAdded, cm.Get("schema"))))
				continue
			}
			traversal := pathutil.Pointer("paths", rt.path, rt.method, "responses", code, "content", mt)
			diff, err := s.diffSchema(cm.Get("schema"), bm.Get("schema"), traversal, pathutil.Root)
			if err != nil {
				return nil, err
			}
			if len(diff) > 0 {
				changes = append(changes, responseBodyChange(rt, ActionChanged, code, mt, diff))
			}
		}
	}

	for _, code := range bside.codes {
		for _, name := range objectOrNil(bside.resp[code].Get("headers")).Keys() {
			bh, err := bside.header(code, name)
			if err != nil {
				return nil, err
			}
			if bh == nil {
				continue
			}
			ch, err := cside.header(code, name)
			if err != nil {
				return nil, err
			}
			if ch == nil {
				changes = append(changes, headerChange(rt, ActionDeleted, code, name,
					wholeSchema(ActionDeleted, bh.Get("schema"))))
			}
		}

		for _, mt := range objectOrNil(bside.resp[code].Get("content")).Keys() {
			if bside.media(code, mt) == nil || cside.media(code, mt) != nil {
				continue
			}
			changes = append(changes, responseBodyChange(rt, ActionDeleted, code, mt,
				wholeSchema(ActionDeleted, bside.media(code, mt).Get("schema"))))
		}
	}

	return changes, nil
}

func headerChange(rt routeKey, action Action, code, name string, diff []SchemaChange) OperationChange {
	return OperationChange{
		Type:       ChangeResponseHeader,
		Action:     action,
		StatusCode: code,
		Header:     name,
		Changes:    schemaKeyword(diff),
		Comment:    fmt.Sprintf(`response header "%s" for "%s" status code has been %s`, name, code, rt.phrase(action)),
	}
}

func responseBodyChange(rt routeKey, action Action, code, mediaType string, diff []SchemaChange) OperationChange {
	return OperationChange{
		Type:       ChangeResponseBody,
		Action:     action,
		StatusCode: code,
		MediaType:  mediaType,
		Changes:    schemaKeyword(diff),
		Comment:    fmt.Sprintf(`response body for "%s" "%s" has been %s`, code, mediaType, rt.phrase(action)),
	}
}
