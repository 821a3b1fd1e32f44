package content

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidPath is returned for a front matter path that is not absolute.
	ErrInvalidPath = errors.New("content: page path must start with /")
	// ErrUnterminated is returned when the closing front matter fence is missing.
	ErrUnterminated = errors.New("content: unterminated front matter")
)

// Page is one markdown document addressable by path.
type Page struct {
	Path        string
	Title       string
	Description string
	// Body is the markdown without front matter.
	Body string
	// Source names the file the page was read from.
	Source string
}

type frontMatter struct {
	Title       string `yaml:"title"`
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
}

const delimiter = "---\n"

// Parse reads a page from data. name is the file name used to derive the
// path and for error messages.
func Parse(name string, data []byte) (Page, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	meta, body, err := splitFrontMatter(data)
	if err != nil {
		return Page{}, fmt.Errorf("parse %s: %w", name, err)
	}
	page := Page{
		Path:        strings.TrimSpace(meta.Path),
		Title:       strings.TrimSpace(meta.Title),
		Description: strings.TrimSpace(meta.Description),
		Body:        string(body),
		Source:      name,
	}
	if page.Path == "" {
		page.Path = PathForFile(name)
	}
	if !strings.HasPrefix(page.Path, "/") {
		return Page{}, fmt.Errorf("parse %s: %w: %q", name, ErrInvalidPath, page.Path)
	}
	if page.Title == "" {
		page.Title = firstHeading(body)
	}
	if page.Title == "" {
		page.Title = page.Path
	}
	return page, nil
}

// PathForFile maps index.md to "/" and any other name.md to "/name".
func PathForFile(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if base == "index" || base == "" || base == "." {
		return "/"
	}
	return "/" + base
}

func splitFrontMatter(data []byte) (frontMatter, []byte, error) {
	var meta frontMatter
	if !bytes.HasPrefix(data, []byte(delimiter)) {
		return meta, data, nil
	}
	rest := data[len(delimiter):]
	var block []byte
	if bytes.HasPrefix(rest, []byte(delimiter)) {
		rest = rest[len(delimiter):]
	} else {
		end := bytes.Index(rest, []byte("\n"+delimiter))
		switch {
		case end >= 0:
			block, rest = rest[:end+1], rest[end+1+len(delimiter):]
		case bytes.HasSuffix(rest, []byte("\n---")):
			block, rest = rest[:len(rest)-len("---")], nil
		default:
			return meta, nil, ErrUnterminated
		}
	}
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return meta, nil, fmt.Errorf("front matter: %w", err)
	}
	return meta, rest, nil
}

func firstHeading(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(inlineText(heading, src))
		return ast.WalkStop, nil
	})
	return title
}

func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			if node.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.CodeSpan:
			b.WriteString(inlineText(node, src))
		case *ast.String:
			b.Write(node.Value)
		default:
			b.WriteString(inlineText(node, src))
		}
	}
	return b.String()
}
