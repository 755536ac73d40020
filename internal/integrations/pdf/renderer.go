// Package pdf renders generated markdown into a simple A4 document.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/pkg/markdown"
	"github.com/pkg/errors"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 6.0
	listIndent = 6.0
)

type style struct {
	size   float64
	weight string
	before float64
}

var styles = map[markdown.Kind]style{
	markdown.Heading1:  {size: 18, weight: "B", before: 6},
	markdown.Heading2:  {size: 15, weight: "B", before: 4},
	markdown.Heading3:  {size: 13, weight: "B", before: 3},
	markdown.Bullet:    {size: 11},
	markdown.Numbered:  {size: 11},
	markdown.Paragraph: {size: 11, before: 1},
}

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Render(title, content string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.SetAutoPageBreak(true, 15)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont(fontFamily, "B", 20)
	doc.MultiCell(0, 10, tr(title), "", "L", false)
	doc.Ln(4)

	number := 0
	for _, b := range markdown.Parse(content) {
		st := styles[b.Kind]
		if st.before > 0 {
			doc.Ln(st.before)
		}
		doc.SetFont(fontFamily, st.weight, st.size)

		if b.Kind != markdown.Numbered {
			number = 0
		}
		switch b.Kind {
		case markdown.Bullet:
			listItem(doc, "-", tr(b.Text))
		case markdown.Numbered:
			number++
			listItem(doc, fmt.Sprintf("%d.", number), tr(b.Text))
		default:
			doc.MultiCell(0, lineHeight+st.size/6, tr(b.Text), "", "L", false)
		}
	}

	if err := doc.Error(); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}
	return buf.Bytes(), nil
}

func listItem(doc *fpdf.Fpdf, marker, text string) {
	left, _, _, _ := doc.GetMargins()
	doc.SetX(left + listIndent)
	doc.CellFormat(listIndent, lineHeight, marker, "", 0, "L", false, 0, "")
	doc.SetLeftMargin(left + 2*listIndent)
	doc.MultiCell(0, lineHeight, text, "", "L", false)
	doc.SetLeftMargin(left)
}

var _ integrations.DocumentRenderer = (*Renderer)(nil)
