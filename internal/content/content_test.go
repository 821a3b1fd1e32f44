package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	src := "---\ntitle: Blog\npath: /blog\ndescription: My thoughts\n---\n# Heading\n\nbody\n"
	page, err := Parse("pages/blog.md", []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Path != "/blog" || page.Title != "Blog" || page.Description != "My thoughts" {
		t.Fatalf("unexpected page %+v", page)
	}
	if !strings.HasPrefix(page.Body, "# Heading") {
		t.Fatalf("front matter leaked into body: %q", page.Body)
	}
}

func TestParseDerivesPathAndTitle(t *testing.T) {
	page, err := Parse("notes/contact.md", []byte("intro\n\n## Reach *me* `now`\n\n# Later\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Path != "/contact" {
		t.Fatalf("expected /contact, got %q", page.Path)
	}
	if page.Title != "Reach me now" {
		t.Fatalf("expected title from first heading, got %q", page.Title)
	}
}

func TestParseWindowsLineEndings(t *testing.T) {
	page, err := Parse("x.md", []byte("---\r\ntitle: X\r\n---\r\nbody\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Title != "X" || page.Body != "body\n" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("a.md", []byte("---\ntitle: a\n")); err == nil {
		t.Fatalf("expected unterminated front matter error")
	}
	if _, err := Parse("a.md", []byte("---\npath: blog\n---\n")); err == nil {
		t.Fatalf("expected relative path error")
	}
	if _, err := Parse("a.md", []byte("---\ntitle: [\n---\n")); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestPathForFile(t *testing.T) {
	cases := map[string]string{
		"index.md":       "/",
		"pages/index.md": "/",
		"blog.md":        "/blog",
		"/tmp/about.MD":  "/about",
	}
	for name, want := range cases {
		if got := PathForFile(name); got != want {
			t.Fatalf("PathForFile(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestBuiltinPages(t *testing.T) {
	lib, err := Builtin()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"/", "/about", "/blog", "/contact"}
	got := lib.Paths()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
	contact, _ := lib.Get("/contact")
	if contact.Title != "Contact" {
		t.Fatalf("expected title from heading, got %q", contact.Title)
	}
}

func TestLoadOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "about.md"), []byte("# Me\n\nshort"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "projects.md"), []byte("# Projects\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	about, _ := lib.Get("/about")
	if about.Title != "Me" {
		t.Fatalf("expected override, got %q", about.Title)
	}
	if _, ok := lib.Get("/projects"); !ok {
		t.Fatalf("expected added page")
	}
	if len(lib.Paths()) != 5 {
		t.Fatalf("expected 5 pages, got %v", lib.Paths())
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"/", "/about", "/blog", "/contact"}
	cases := map[string]string{
		"/blg":      "/blog",
		"/blogs":    "/blog",
		"/cntct":    "/contact",
		"/zzzzzzzz": "",
	}
	for path, want := range cases {
		if got := Suggest(path, known); got != want {
			t.Fatalf("Suggest(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestResolveUnknownPath(t *testing.T) {
	lib := NewLibrary(Page{Path: "/blog", Title: "Blog"})
	page, ok := lib.Resolve("/blg")
	if ok {
		t.Fatalf("expected miss")
	}
	if !strings.Contains(page.Body, "`/blog`") {
		t.Fatalf("expected suggestion in body, got %q", page.Body)
	}
}

func TestRendererWrapsAndResizes(t *testing.T) {
	r, err := NewRenderer("notty", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := r.Render(Page{Path: "/", Body: "# Title\n\n" + strings.Repeat("word ", 40)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Fatalf("expected heading in output: %q", out)
	}
	if err := r.Resize(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Width() != MinWidth {
		t.Fatalf("expected width clamp to %d, got %d", MinWidth, r.Width())
	}
}

func TestRendererRejectsUnknownStyle(t *testing.T) {
	if _, err := NewRenderer("neon", 80); err == nil {
		t.Fatalf("expected error")
	}
}
