// Package resolver resolves local "$ref" JSON Pointers against a registered
// document.
//
// A Resolver is scoped to the documents registered with it. The differ creates
// one Resolver per document per comparison, so an identical pointer string
// always resolves inside its own document. External (cross-document)
// references are not supported and fail with an [oaserrors.ReferenceError].
//
// A Resolver is not safe for concurrent use.
package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/erraggy/routediff/internal/pathutil"
	"github.com/erraggy/routediff/node"
	"github.com/erraggy/routediff/oaserrors"
)

// Resolver holds registered documents and resolves pointers into them.
type Resolver struct {
	docs  map[string]*node.Node
	cache map[string]*node.Node
	newID func() string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithIDFunc replaces the random document id generator.
func WithIDFunc(fn func() string) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// New returns an empty Resolver. Document ids are random UUIDs unless
// WithIDFunc is given.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		docs:  make(map[string]*node.Node),
		cache: make(map[string]*node.Node),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores doc and returns the opaque id used to resolve against it.
func (r *Resolver) Register(doc *node.Node) string {
	id := r.newID()
	r.docs[id] = doc
	return id
}

// Resolve returns the value ref points to inside the document registered as
// id. The target is returned as-is; a "$ref" found there is not followed.
func (r *Resolver) Resolve(id, ref string) (*node.Node, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, &oaserrors.ReferenceError{Ref: ref, DocumentID: id, Message: "unknown document"}
	}
	if !pathutil.IsLocal(ref) {
		return nil, &oaserrors.ReferenceError{Ref: ref, DocumentID: id, Message: "external references are not supported"}
	}

	key := id + ref
	if v, ok := r.cache[key]; ok {
		return v, nil
	}

	current := doc
	tokens := pathutil.Split(ref)
	for i, tok := range tokens {
		next, err := step(current, tok)
		if err != nil {
			return nil, &oaserrors.ReferenceError{
				Ref:        ref,
				DocumentID: id,
				Message:    "not found",
				Cause:      fmt.Errorf("%w at %s", err, pathutil.Pointer(tokens[:i]...)),
			}
		}
		current = next
	}

	r.cache[key] = current
	return current, nil
}

func step(current *node.Node, tok string) (*node.Node, error) {
	switch current.Kind() {
	case node.KindObject:
		if !current.Has(tok) {
			return nil, fmt.Errorf("missing key %q", tok)
		}
		return current.Get(tok), nil
	case node.KindArray:
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 0 || strings.HasPrefix(tok, "+") {
			return nil, fmt.Errorf("invalid array index %q", tok)
		}
		if idx >= current.Len() {
			return nil, fmt.Errorf("array index %d out of bounds (length %d)", idx, current.Len())
		}
		return current.Index(idx), nil
	default:
		return nil, fmt.Errorf("cannot traverse into %s", current.Kind())
	}
}
