package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/export"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/sales"
)

func (h *Handler) SalesReport(c *gin.Context) {
	granularity := sales.Granularity(c.DefaultQuery("type", string(sales.GranularityDaily)))

	rows, err := h.sales.Report(c.Request.Context(), granularity)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		items = append(items, gin.H{
			"period":       row.Period,
			"total_orders": row.TotalOrders,
			"total_sales":  row.TotalSales.StringFixed(2),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"type":    granularity,
		"reports": items,
	})
}

// ExportSalesReport streams the report as an attachment in the requested
// format, pdf by default.
func (h *Handler) ExportSalesReport(c *gin.Context) {
	granularity := sales.Granularity(c.DefaultQuery("type", string(sales.GranularityDaily)))
	format := c.DefaultQuery("format", "pdf")

	var (
		renderer    sales.Renderer
		contentType string
		filename    string
	)
	switch format {
	case "pdf":
		renderer = export.NewPDFRenderer()
		contentType = "application/pdf"
		filename = "sales_report.pdf"
	case "docx":
		renderer = export.NewDocxRenderer()
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
		filename = "sales_report.docx"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format"})
		return
	}

	out, err := h.sales.Export(c.Request.Context(), granularity, renderer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, out)
}
