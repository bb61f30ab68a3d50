// Package content parses CapEdge transcript pages. The call text is
// served as HTML: a grid that alternates speaker headings (h3) with
// blocks of paragraphs. This package turns that into an ordered list
// of speaker sections.
package content

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Section is one speaker's turn: who spoke and their paragraphs, in
// document order.
type Section struct {
	Speaker    string
	Paragraphs []string
}

// Document is a parsed transcript page.
type Document struct {
	Sections []Section
}

// Empty reports whether no transcript content was found in the page.
func (d *Document) Empty() bool {
	return len(d.Sections) == 0
}

// Text renders the document as plain text: each speaker as a "[Name]"
// line followed by blank-line separated paragraphs.
func (d *Document) Text() string {
	var b strings.Builder
	for _, section := range d.Sections {
		b.WriteString("\n[")
		b.WriteString(section.Speaker)
		b.WriteString("]\n")
		for _, p := range section.Paragraphs {
			b.WriteString(p)
			b.WriteString("\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Parse extracts the call transcript from a transcript page. The
// transcript lives under div.r6o-annotatable > div.grid; anything
// before the first speaker heading is ignored. An absent grid yields
// an empty Document, not an error — some transcript pages carry no
// call text.
func Parse(r io.Reader) (*Document, error) {
	page, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse transcript page: %w", err)
	}

	doc := &Document{}
	grid := page.Find("div.r6o-annotatable div.grid").First()
	if grid.Length() == 0 {
		return doc, nil
	}

	var current *Section
	grid.Children().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "h3":
			doc.Sections = append(doc.Sections, Section{
				Speaker: strings.TrimSpace(child.Text()),
			})
			current = &doc.Sections[len(doc.Sections)-1]
		case "div":
			if current == nil {
				return
			}
			child.Find("p").Each(func(_ int, p *goquery.Selection) {
				text := strings.TrimSpace(p.Text())
				if text != "" {
					current.Paragraphs = append(current.Paragraphs, text)
				}
			})
		}
	})

	return doc, nil
}
