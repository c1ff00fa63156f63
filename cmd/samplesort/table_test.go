package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"samplesort/internal/ledger"
	"samplesort/internal/organizer"
	"samplesort/internal/placement"
)

func TestRenderCategoryTable(t *testing.T) {
	summary := organizer.Summary{
		Records: []organizer.Placed{
			{Record: placement.Record{Category: "Drums/Kicks"}, Bytes: 2000},
			{Record: placement.Record{Category: "Bass"}, Bytes: 500},
			{Record: placement.Record{Category: "Drums/Kicks"}, Bytes: 1000},
		},
		Bytes: 3500,
	}
	out := renderCategoryTable(summary, false)
	lines := strings.Split(out, "\n")

	assert.Contains(t, out, "Category")
	bass := strings.Index(out, "Bass")
	kicks := strings.Index(out, "Drums/Kicks")
	assert.True(t, bass >= 0 && kicks > bass, "categories should be sorted")
	assert.Contains(t, out, "3.0 kB")
	assert.Contains(t, out, "3.5 kB")
	assert.Contains(t, lines[len(lines)-2], "Total")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, nil, false)
	assert.Contains(t, out, "only")
	assert.Empty(t, renderTable(nil, nil, nil, false))
}

func TestRenderHistoryTable(t *testing.T) {
	runs := []ledger.Run{
		{
			ID:        "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			StartedAt: time.Now().Add(-2 * time.Hour),
			Mode:      "copy",
			Status:    ledger.StatusFailed,
			Error:     "disk full",
			Files:     3,
			Bytes:     1_500_000,
			DestDir:   "/sorted",
		},
	}
	out := renderHistoryTable(runs, false)
	assert.Contains(t, out, "1b4e28ba")
	assert.NotContains(t, out, "2fa1")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "failed: disk full")
	assert.Contains(t, out, "1.5 MB")
}
