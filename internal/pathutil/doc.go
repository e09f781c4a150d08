// Package pathutil builds and rewrites the JSON Pointer strings that label
// schema changes.
//
// Pointers are rooted at "#" and tokens are escaped per RFC 6901 ("~" becomes
// "~0", "/" becomes "~1"), so a schema key such as "a/b" stays a single
// segment:
//
//	pathutil.Join("#/properties", "a/b") // "#/properties/a~1b"
//
// [Rebase] moves a pointer from one subtree to another. The differ uses it to
// replay memoized results for a shared $ref target under a new output path.
package pathutil
