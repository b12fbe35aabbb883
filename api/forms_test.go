package api

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestParseSkillFormBoundaries(t *testing.T) {
	cases := []struct {
		name        string
		proficiency string
		experience  string
		wantErr     bool
	}{
		{"lower bound", "1", "0", false},
		{"upper bound", "100", "50", false},
		{"proficiency too low", "0", "1", true},
		{"proficiency too high", "101", "1", true},
		{"experience negative", "50", "-1", true},
		{"experience too high", "50", "51", true},
		{"proficiency not a number", "many", "1", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := url.Values{
				"name":             {"Go"},
				"category":         {"languages"},
				"proficiency":      {tc.proficiency},
				"years_experience": {tc.experience},
			}
			r := httptest.NewRequest("POST", "/admin/skill", strings.NewReader(values.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			_, err := parseSkillForm(r)
			if tc.wantErr && err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseBlogPostFormReadTime(t *testing.T) {
	base := url.Values{
		"title":   {"A Post"},
		"content": {"body"},
	}

	r := httptest.NewRequest("POST", "/admin/blog-post", strings.NewReader(base.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form, err := parseBlogPostForm(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.ReadTime != blogReadTimeDefault {
		t.Fatalf("expected default read time %d, got %d", blogReadTimeDefault, form.ReadTime)
	}

	// A present but malformed read_time rejects the whole form.
	bad := url.Values{
		"title":     {"A Post"},
		"content":   {"body"},
		"read_time": {"soon"},
	}
	r = httptest.NewRequest("POST", "/admin/blog-post", strings.NewReader(bad.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if _, err := parseBlogPostForm(r); err == nil {
		t.Fatal("expected an error for malformed read_time, got nil")
	}
}

func TestParseContactFormDefaults(t *testing.T) {
	values := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"A sufficiently long message"},
	}
	r := httptest.NewRequest("POST", "/contact", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := parseContactForm(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.Subject != "General Inquiry" {
		t.Fatalf("expected default subject, got %q", form.Subject)
	}
	if form.Category != "general" {
		t.Fatalf("expected default category, got %q", form.Category)
	}
}

func TestParseInquiryStatusFormRejectsUnknown(t *testing.T) {
	values := url.Values{"status": {"archived"}}
	r := httptest.NewRequest("POST", "/admin/inquiry/x/status", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if _, err := parseInquiryStatusForm(r); err == nil {
		t.Fatal("expected an error for unknown status, got nil")
	}
}

func TestFormBool(t *testing.T) {
	for _, truthy := range []string{"on", "true", "1", "yes"} {
		if !formBool(truthy) {
			t.Errorf("expected %q to be true", truthy)
		}
	}
	for _, falsy := range []string{"", "off", "false", "0", "no"} {
		if formBool(falsy) {
			t.Errorf("expected %q to be false", falsy)
		}
	}
}
