package differ

import (
	"fmt"

	"github.com/erraggy/routediff/internal/pathutil"
	"github.com/erraggy/routediff/node"
)

// parameter is a dereferenced Parameter Object with its identity.
type parameter struct {
	obj  *node.Node
	name *node.Node
	in   *node.Node
}

func (p parameter) matches(other parameter) bool {
	return p.name.Equal(other.name) && p.in.Equal(other.in)
}

func (p parameter) label() (name, in string) {
	name, _ = p.name.AsString()
	in, _ = p.in.AsString()
	return name, in
}

// parameterList dereferences each entry of a parameters array. Anything that
// is not an array is an empty list.
func parameterList(h docHandle, list *node.Node) ([]parameter, error) {
	items := list.Items()
	out := make([]parameter, 0, len(items))
	for _, item := range items {
		obj, err := h.deref(item)
		if err != nil {
			return nil, err
		}
		obj = objectOrNil(obj)
		out = append(out, parameter{obj: obj, name: obj.Get("name"), in: obj.Get("in")})
	}
	return out, nil
}

func findParameter(list []parameter, p parameter) (parameter, bool) {
	for _, q := range list {
		if q.matches(p) {
			return q, true
		}
	}
	return parameter{}, false
}

// compareParameters matches parameters by name and location. A parameter
// whose location changed is a deletion plus an addition.
func (s *session) compareParameters(rt routeKey, candidate, baseline *node.Node) ([]OperationChange, error) {
	cparams, err := parameterList(s.candidate, candidate)
	if err != nil {
		return nil, err
	}
	bparams, err := parameterList(s.baseline, baseline)
	if err != nil {
		return nil, err
	}

	var changes []OperationChange
	for _, cp := range cparams {
		name, in := cp.label()
		bp, ok := findParameter(bparams, cp)
		if !ok {
			changes = append(changes, parameterChange(rt, ActionAdded, name, in,
				wholeSchema(ActionAdded, cp.obj.Get("schema"))))
			continue
		}

		traversal := pathutil.Pointer("paths", rt.path, rt.method, "parameters", in, name)
		diff, err := s.diffSchema(cp.obj.Get("schema"), bp.obj.Get("schema"), traversal, pathutil.Root)
		if err != nil {
			return nil, err
		}
		if len(diff) > 0 {
			changes = append(changes, parameterChange(rt, ActionChanged, name, in, diff))
		}
	}

	for _, bp := range bparams {
		if _, ok := findParameter(cparams, bp); ok {
			continue
		}
		name, in := bp.label()
		changes = append(changes, parameterChange(rt, ActionDeleted, name, in,
			wholeSchema(ActionDeleted, bp.obj.Get("schema"))))
	}
	return changes, nil
}

func parameterChange(rt routeKey, action Action, name, in string, diff []SchemaChange) OperationChange {
	return OperationChange{
		Type:    ChangeParameter,
		Action:  action,
		Name:    name,
		In:      in,
		Changes: schemaKeyword(diff),
		Comment: fmt.Sprintf(`%s parameter "%s" has been %s`, in, name, rt.phrase(action)),
	}
}
