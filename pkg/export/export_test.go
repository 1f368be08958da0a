package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Free slots 2025-02-15",
		Headers: []string{"date", "start", "end"},
		Rows: [][]string{
			{"2025-02-15", "12:00", "17:30"},
			{"2025-02-15", "20:00", "21:00"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "date,start,end\n2025-02-15,12:00,17:30\n2025-02-15,20:00,21:00\n", string(out))
}

func TestCSVExporterRejectsRaggedRows(t *testing.T) {
	table := sampleTable()
	table.Rows = append(table.Rows, []string{"2025-02-16"})
	_, err := NewCSVExporter().Render(table)
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportersRequireHeaders(t *testing.T) {
	for _, e := range []Exporter{NewCSVExporter(), NewPDFExporter()} {
		_, err := e.Render(Table{})
		assert.Error(t, err, e.Extension())
	}
}
