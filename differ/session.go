package differ

import (
	"strings"

	"github.com/erraggy/routediff/internal/httputil"
	"github.com/erraggy/routediff/node"
	"github.com/erraggy/routediff/oaserrors"
	"github.com/erraggy/routediff/parser"
	"github.com/erraggy/routediff/resolver"
)

// maxConstructRefHops bounds "$ref" chains on parameters, responses and the
// other constructs the comparators dereference.
const maxConstructRefHops = 32

// session is the state of one comparison. It is never shared between calls.
type session struct {
	candidate docHandle
	baseline  docHandle

	memo map[string]*memoEntry

	unchanged []Route
	added     []Route
	deleted   []Route
	changed   []Route

	log parser.Logger
}

// docHandle pairs a document with the resolver it is registered in.
type docHandle struct {
	doc      *node.Node
	resolver *resolver.Resolver
	id       string
}

func (h docHandle) resolve(ref string) (*node.Node, error) {
	return h.resolver.Resolve(h.id, ref)
}

// memoEntry caches the schema changes found under one traversal path.
// output is the output path the records were produced under.
type memoEntry struct {
	done    bool
	output  string
	changes []SchemaChange
}

func newSession(candidate, baseline *node.Node, log parser.Logger) *session {
	s := &session{
		memo:      make(map[string]*memoEntry),
		unchanged: []Route{},
		added:     []Route{},
		deleted:   []Route{},
		changed:   []Route{},
		log:       log,
	}
	s.candidate = register(candidate)
	s.baseline = register(baseline)
	return s
}

func register(doc *node.Node) docHandle {
	r := resolver.New()
	return docHandle{doc: doc, resolver: r, id: r.Register(doc)}
}

// deref follows a construct-level "$ref" (a parameter, response, header,
// request body or path item given by reference) to the object it names.
// Values without a string "$ref" are returned unchanged.
func (h docHandle) deref(n *node.Node) (*node.Node, error) {
	seen := make(map[string]bool)
	for hops := 0; ; hops++ {
		ref, ok := n.Ref()
		if !ok {
			return n, nil
		}
		if seen[ref] || hops >= maxConstructRefHops {
			return nil, &oaserrors.ReferenceError{Ref: ref, DocumentID: h.id, Message: "circular reference"}
		}
		seen[ref] = true
		next, err := h.resolve(ref)
		if err != nil {
			return nil, err
		}
		n = next
	}
}

// objectOrNil returns n when it is an object. Comparators treat any other
// shape as an empty collection.
func objectOrNil(n *node.Node) *node.Node {
	if n.IsObject() {
		return n
	}
	return nil
}

// present reports whether a construct exists. Null counts as absent.
func present(n *node.Node) bool {
	return !n.IsAbsent() && !n.IsNull()
}

// checkMediaTypes logs content keys that are not media types. They are
// still compared.
func (s *session) checkMediaTypes(rt routeKey, content *node.Node) {
	for _, mt := range content.Keys() {
		if !httputil.IsValidMediaType(mt) {
			s.log.Debug("unexpected media type", "method", rt.method, "path", rt.path, "mediaType", mt)
		}
	}
}

// checkMethodKeys logs operation keys that repeat a method in another case.
// Only the first one in document order is compared.
func (s *session) checkMethodKeys(path, role string, keys []string) {
	seen := make(map[string]string)
	for _, k := range keys {
		if !httputil.IsMethod(k) {
			continue
		}
		method := strings.ToLower(k)
		if first, ok := seen[method]; ok {
			s.log.Debug("duplicate method key ignored", "document", role, "path", path, "key", k, "using", first)
			continue
		}
		seen[method] = k
	}
}
