package export

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/sales"
)

// DocxRenderer implements sales.Renderer with one paragraph per row.
type DocxRenderer struct{}

func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

func (r *DocxRenderer) Render(rows []sales.Row) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	heading := doc.AddParagraph()
	heading.AddText(reportTitle).Size("28").Bold()

	for _, row := range rows {
		doc.AddParagraph().AddText(line(row)).Size("20")
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render docx: %w", err)
	}

	return buf.Bytes(), nil
}
