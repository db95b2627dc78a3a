package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/sales"
)

var sampleRows = []sales.Row{
	{Period: "Jan 07, 2026", TotalOrders: 3, TotalSales: decimal.RequireFromString("4500.00")},
	{Period: "Jan 06, 2026", TotalOrders: 1, TotalSales: decimal.RequireFromString("899.50")},
}

func TestLine(t *testing.T) {
	got := line(sampleRows[0])
	assert.Equal(t, "Jan 07, 2026 | Orders: 3 | Sales: ₱4500.00", got)
}

func TestPDFRenderer_Render(t *testing.T) {
	t.Run("produces a pdf document", func(t *testing.T) {
		out, err := NewPDFRenderer().Render(sampleRows)
		require.NoError(t, err)
		require.NotEmpty(t, out)
		assert.Equal(t, "%PDF", string(out[:4]))
	})

	t.Run("empty report still renders", func(t *testing.T) {
		out, err := NewPDFRenderer().Render(nil)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("long report spills onto extra pages", func(t *testing.T) {
		var rows []sales.Row
		for i := 0; i < 120; i++ {
			rows = append(rows, sampleRows[0])
		}
		out, err := NewPDFRenderer().Render(rows)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})
}

func TestDocxRenderer_Render(t *testing.T) {
	t.Run("produces a docx archive", func(t *testing.T) {
		out, err := NewDocxRenderer().Render(sampleRows)
		require.NoError(t, err)
		require.NotEmpty(t, out)
		// docx is a zip container
		assert.Equal(t, "PK", string(out[:2]))
	})

	t.Run("empty report still renders", func(t *testing.T) {
		out, err := NewDocxRenderer().Render(nil)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})
}
