// Package assets resolves stored image references into displayable URLs.
// Resolution lives in exactly one place so every surface (API responses,
// client SDK, CLI) agrees on how a stored path becomes a public URL.
package assets

import (
	"net/url"
	"strings"
)

// PlaceholderPath is served when an entity carries no image reference.
const PlaceholderPath = "/images/placeholder.png"

// Resolver turns stored image references into public URLs against a fixed
// backend origin.
type Resolver struct {
	origin string
}

// NewResolver creates a Resolver for the given public origin,
// e.g. "https://api.example.com". An empty origin leaves server-relative
// paths as they are.
func NewResolver(origin string) *Resolver {
	return &Resolver{origin: strings.TrimRight(origin, "/")}
}

// ResolveURL resolves a single image reference. It is idempotent: resolving
// an already resolved URL returns it unchanged.
//
// Rules, in order: an empty reference resolves to the placeholder; a
// reference that already carries a URI scheme is returned as-is; a
// server-relative path (leading "/") is prefixed with the origin; anything
// else is treated as a bare filename under the origin root.
func (r *Resolver) ResolveURL(ref string) string {
	if ref == "" || ref == PlaceholderPath {
		return r.prefix(PlaceholderPath)
	}

	if hasScheme(ref) {
		return ref
	}

	if strings.HasPrefix(ref, "/") {
		return r.prefix(ref)
	}

	return r.prefix("/" + ref)
}

// ResolveAll resolves each reference in a slice. A nil slice resolves to an
// empty non-nil slice so JSON serialization yields [] rather than null.
func (r *Resolver) ResolveAll(refs []string) []string {
	resolved := make([]string, 0, len(refs))
	for _, ref := range refs {
		resolved = append(resolved, r.ResolveURL(ref))
	}

	return resolved
}

// ResolveAny defensively normalizes the reference shapes seen in decoded
// payloads: a plain string, a slice of strings (first entry wins), or an
// object carrying a "url" field. Anything else resolves to the placeholder.
func (r *Resolver) ResolveAny(ref any) string {
	switch v := ref.(type) {
	case string:
		return r.ResolveURL(v)
	case []string:
		if len(v) == 0 {
			return r.ResolveURL("")
		}

		return r.ResolveURL(v[0])
	case []any:
		if len(v) == 0 {
			return r.ResolveURL("")
		}

		return r.ResolveAny(v[0])
	case map[string]any:
		nested, _ := v["url"].(string)

		return r.ResolveURL(nested)
	default:
		return r.ResolveURL("")
	}
}

// StoredPath is the inverse of ResolveURL for references under this
// resolver's origin: it strips the origin prefix so the server-relative
// stored form can be persisted. Foreign absolute URLs are returned unchanged.
func (r *Resolver) StoredPath(urlOrPath string) string {
	if r.origin != "" && strings.HasPrefix(urlOrPath, r.origin+"/") {
		return strings.TrimPrefix(urlOrPath, r.origin)
	}

	return urlOrPath
}

func (r *Resolver) prefix(path string) string {
	return r.origin + path
}

// hasScheme reports whether ref already carries a URI scheme such as
// "https://..." or "data:...".
func hasScheme(ref string) bool {
	u, err := url.Parse(ref)

	return err == nil && u.Scheme != ""
}
