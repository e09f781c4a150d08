package pathutil

import "strings"

// Root is the pointer to the whole document.
const Root = "#"

var (
	tokenEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	tokenUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Escape escapes a single reference token.
func Escape(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	return tokenEscaper.Replace(token)
}

// Unescape reverses Escape.
func Unescape(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	return tokenUnescaper.Replace(token)
}

// Join appends escaped tokens to base.
func Join(base string, tokens ...string) string {
	if len(tokens) == 0 {
		return base
	}
	var b strings.Builder
	n := len(base)
	for _, t := range tokens {
		n += len(t) + 1
	}
	b.Grow(n)
	b.WriteString(base)
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(Escape(t))
	}
	return b.String()
}

// Pointer builds a pointer from the document root.
func Pointer(tokens ...string) string {
	return Join(Root, tokens...)
}

// Split returns the unescaped tokens of a local pointer. The leading "#" is
// optional; "#" and "" yield no tokens.
func Split(pointer string) []string {
	p := strings.TrimPrefix(pointer, Root)
	if p == "" || p == "/" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, part := range parts {
		parts[i] = Unescape(part)
	}
	return parts
}

// IsLocal reports whether ref points into the same document.
func IsLocal(ref string) bool {
	return strings.HasPrefix(ref, Root)
}

// Rebase rewrites pointer so that its from prefix becomes to. Pointers that
// are not under from are returned unchanged.
func Rebase(pointer, from, to string) string {
	if from == to {
		return pointer
	}
	if pointer == from {
		return to
	}
	if strings.HasPrefix(pointer, from) && pointer[len(from)] == '/' {
		return to + pointer[len(from):]
	}
	return pointer
}
