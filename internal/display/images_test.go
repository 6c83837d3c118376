package display

import (
	"strings"
	"testing"
)

func TestImageURL(t *testing.T) {
	base := "https://cdn"

	if got := ImageURL("", base); !strings.HasPrefix(got, "data:image/svg+xml;base64,") {
		t.Fatalf("absent path must yield inline placeholder, got %q", got)
	}
	if got := ImageURL("http://x/y.png", base); got != "http://x/y.png" {
		t.Fatalf("absolute URL must pass through, got %q", got)
	}
	want := "https://cdn/storage/v1/object/public/produtos/foo/bar.png"
	if got := ImageURL("/foo/bar.png", base); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := ImageURL("foo/bar.png", base); got != want {
		t.Fatalf("no leading slash: got %q, want %q", got, want)
	}
	if got := ImageURL("foo.png", ""); !strings.HasPrefix(got, "data:") {
		t.Fatalf("unconfigured base must yield placeholder, got %q", got)
	}
}

func TestImageURLPtr(t *testing.T) {
	if got := ImageURLPtr(nil, "https://cdn"); !strings.HasPrefix(got, "data:") {
		t.Fatalf("nil path must yield placeholder, got %q", got)
	}
	p := "a.png"
	if got := ImageURLPtr(&p, "https://cdn"); got != "https://cdn/storage/v1/object/public/produtos/a.png" {
		t.Fatalf("got %q", got)
	}
}

func TestSocialIconPath(t *testing.T) {
	if SocialIconPath("Instagram") != socialIconPaths["instagram"] {
		t.Fatal("icon lookup must be case-insensitive")
	}
	if SocialIconPath("orkut") != socialIconPaths["facebook"] {
		t.Fatal("unknown keys must fall back to the default glyph")
	}
}
