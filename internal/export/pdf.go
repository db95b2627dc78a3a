// Package export renders sales report rows into downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/sales"
)

const reportTitle = "Sales Report"

// line formats one report row the way the admin table shows it.
func line(row sales.Row) string {
	return fmt.Sprintf("%s | Orders: %d | Sales: ₱%s",
		row.Period, row.TotalOrders, row.TotalSales.StringFixed(2))
}

// PDFRenderer implements sales.Renderer with an A4 portrait layout.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(rows []sales.Row) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; the translator handles the peso sign.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, reportTitle)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.Cell(0, 7, tr(line(row)))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
