package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is a parsed HTML document ready for asset discovery.
type Page struct {
	doc *goquery.Document
}

// ParsePage parses raw HTML into a Page. Parsing is best effort:
// malformed markup still yields a document, the same way a browser would
// build one.
func ParsePage(raw []byte) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Stylesheets returns the href of every stylesheet link, in document
// order. Links without an href do not consume a position.
func (p *Page) Stylesheets() []string {
	var hrefs []string
	p.doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}

// Scripts returns the src of every script element that has one, in
// document order. Inline scripts do not consume a position.
func (p *Page) Scripts() []string {
	var srcs []string
	p.doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			srcs = append(srcs, src)
		}
	})
	return srcs
}

// Prettify renders the document with one node per line and one space of
// indentation per nesting level. Attribute values, including asset
// references, are left exactly as parsed; nothing is rewritten to point
// at archived copies.
func (p *Page) Prettify() string {
	var b strings.Builder
	for _, n := range p.doc.Nodes {
		prettyNode(&b, n, 0)
	}
	return b.String()
}

// voidElements have no closing tag in HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements hold text that must not be entity-escaped.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}

var attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")

func prettyNode(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat(" ", depth)

	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			prettyNode(b, c, depth)
		}
	case html.DoctypeNode:
		b.WriteString(indent)
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Data)
		b.WriteString(">\n")
	case html.CommentNode:
		b.WriteString(indent)
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->\n")
	case html.TextNode:
		text := n.Data
		if n.Parent == nil || !rawTextElements[n.Parent.Data] {
			text = html.EscapeString(text)
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteString("\n")
		}
	case html.ElementNode:
		b.WriteString(indent)
		b.WriteString("<")
		b.WriteString(n.Data)
		for _, attr := range n.Attr {
			b.WriteString(" ")
			b.WriteString(attr.Key)
			b.WriteString(`="`)
			b.WriteString(attrEscaper.Replace(attr.Val))
			b.WriteString(`"`)
		}
		b.WriteString(">\n")

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			prettyNode(b, c, depth+1)
		}

		if !voidElements[n.Data] {
			b.WriteString(indent)
			b.WriteString("</")
			b.WriteString(n.Data)
			b.WriteString(">\n")
		}
	}
}
