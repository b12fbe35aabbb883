package sanitize_test

import (
	"strings"
	"testing"

	"github.com/vishaldeshmukh2k6/portfolio-backend/sanitize"
)

func TestText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"strips angle brackets", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"strips quotes", `say "hi" and 'bye'`, "say hi and bye"},
		{"trims", "  padded  ", "padded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitize.Text(tc.in); got != tc.want {
				t.Errorf("Text(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTextTruncates(t *testing.T) {
	long := strings.Repeat("a", 2000)
	if got := sanitize.Text(long); len(got) != sanitize.MaxTextLength {
		t.Errorf("len = %d, want %d", len(got), sanitize.MaxTextLength)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last+tag@sub.example.org"}
	for _, addr := range valid {
		if !sanitize.ValidEmail(addr) {
			t.Errorf("ValidEmail(%q) = false, want true", addr)
		}
	}
	invalid := []string{"", "plain", "a@b", "@example.com", "a b@c.com"}
	for _, addr := range invalid {
		if sanitize.ValidEmail(addr) {
			t.Errorf("ValidEmail(%q) = true, want false", addr)
		}
	}
}

func TestValidURL(t *testing.T) {
	valid := []string{"http://example.com", "https://github.com/user/repo"}
	for _, u := range valid {
		if !sanitize.ValidURL(u) {
			t.Errorf("ValidURL(%q) = false, want true", u)
		}
	}
	invalid := []string{"", "ftp://example.com", "example.com", "https://nodot"}
	for _, u := range invalid {
		if sanitize.ValidURL(u) {
			t.Errorf("ValidURL(%q) = true, want false", u)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World! 2.0", "hello-world-20"},
		{"Go  Concurrency   Patterns", "go-concurrency-patterns"},
		{"---trimmed---", "trimmed"},
		{"ALL CAPS", "all-caps"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitize.Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyCharset(t *testing.T) {
	slug := sanitize.Slugify("Weird *&^% Title #42 <ok>")
	for _, r := range slug {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			t.Fatalf("slug %q contains %q", slug, r)
		}
	}
}

func TestValidSlug(t *testing.T) {
	if !sanitize.ValidSlug("hello-world-20") {
		t.Error("expected hello-world-20 to be valid")
	}
	for _, s := range []string{"", "has space", "../etc/passwd", "post?x=1"} {
		if sanitize.ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true, want false", s)
		}
	}
}
