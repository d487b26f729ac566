package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	resolver := NewResolver("https://api.example.com/")

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"empty falls back to placeholder", "", "https://api.example.com" + PlaceholderPath},
		{"placeholder sentinel", PlaceholderPath, "https://api.example.com" + PlaceholderPath},
		{"absolute URL unchanged", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"data URI unchanged", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"server-relative path", "/uploads/a.jpg", "https://api.example.com/uploads/a.jpg"},
		{"bare filename", "a.jpg", "https://api.example.com/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.ResolveURL(tt.ref))
		})
	}
}

func TestResolveURL_Idempotent(t *testing.T) {
	resolver := NewResolver("https://api.example.com")

	inputs := []string{"", "/uploads/a.jpg", "a.jpg", "https://cdn.example.com/a.jpg", PlaceholderPath}
	for _, input := range inputs {
		once := resolver.ResolveURL(input)
		assert.Equal(t, once, resolver.ResolveURL(once), "input %q", input)
	}
}

func TestResolveURL_EmptyOrigin(t *testing.T) {
	resolver := NewResolver("")

	assert.Equal(t, "/uploads/a.jpg", resolver.ResolveURL("/uploads/a.jpg"))
	assert.Equal(t, PlaceholderPath, resolver.ResolveURL(""))
}

func TestResolveAll(t *testing.T) {
	resolver := NewResolver("https://api.example.com")

	resolved := resolver.ResolveAll(nil)
	assert.NotNil(t, resolved)
	assert.Empty(t, resolved)

	resolved = resolver.ResolveAll([]string{"/uploads/a.jpg", "b.jpg"})
	assert.Equal(t, []string{
		"https://api.example.com/uploads/a.jpg",
		"https://api.example.com/b.jpg",
	}, resolved)
}

func TestStoredPath(t *testing.T) {
	resolver := NewResolver("https://api.example.com")

	assert.Equal(t, "/uploads/a.jpg", resolver.StoredPath("https://api.example.com/uploads/a.jpg"))
	assert.Equal(t, "/uploads/a.jpg", resolver.StoredPath("/uploads/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/a.jpg", resolver.StoredPath("https://cdn.example.com/a.jpg"))
}

func TestResolveAny(t *testing.T) {
	resolver := NewResolver("https://api.example.com")
	placeholder := "https://api.example.com" + PlaceholderPath

	assert.Equal(t, "https://api.example.com/uploads/a.jpg", resolver.ResolveAny("/uploads/a.jpg"))
	assert.Equal(t, "https://api.example.com/uploads/a.jpg", resolver.ResolveAny([]string{"/uploads/a.jpg", "/uploads/b.jpg"}))
	assert.Equal(t, "https://api.example.com/uploads/a.jpg", resolver.ResolveAny(map[string]any{"url": "/uploads/a.jpg"}))
	assert.Equal(t, placeholder, resolver.ResolveAny(nil))
	assert.Equal(t, placeholder, resolver.ResolveAny([]string{}))
	assert.Equal(t, placeholder, resolver.ResolveAny(42))
}
