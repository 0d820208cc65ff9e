package stylesink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/readably/internal/application/port"
)

var _ port.StyleSink = (*Document)(nil)

// Document applies style elements to a parsed HTML page. Elements live in <head>.
type Document struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// NewDocument parses an HTML page.
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// NewDocumentFromBytes parses an HTML page held in memory.
func NewDocumentFromBytes(page []byte) (*Document, error) {
	return NewDocument(bytes.NewReader(page))
}

func (d *Document) Upsert(_ context.Context, id, css string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing := d.find(id)
	if existing.Length() > 0 {
		// A page may already carry duplicates; keep the first one only.
		existing.Slice(1, existing.Length()).Remove()
		existing.First().SetText(css)
		return nil
	}

	head := d.doc.Find("head").First()
	if head.Length() == 0 {
		return fmt.Errorf("page has no head element")
	}

	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	node.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	head.AppendNodes(node)
	return nil
}

func (d *Document) Remove(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.find(id).Remove()
	return nil
}

// CSS returns the text of the style element with id and whether it exists.
func (d *Document) CSS(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sel := d.find(id)
	if sel.Length() == 0 {
		return "", false
	}
	return sel.First().Text(), true
}

// Count returns how many style elements carry id.
func (d *Document) Count(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.find(id).Length()
}

// Render writes the full page, doctype included.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
	}
	return nil
}

func (d *Document) find(id string) *goquery.Selection {
	return d.doc.Find("style").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr("id")
		return ok && v == id
	})
}
