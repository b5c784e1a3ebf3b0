package outwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pq "github.com/huangsam/compareview/internal/parquet"
)

func samplePaths() schema.PathExplorationView {
	return schema.PathExplorationView{
		Title:    "Path to Form Submission",
		Subtitle: "User journey leading to 120 form submissions",
		Steps: []schema.PathColumn{
			{Step: 1, Pages: []schema.PageBar{{Path: "/home", Users: 100, WidthPercent: 100}}},
			{Step: 2, Pages: []schema.PageBar{{Path: "3 More", Users: 50, WidthPercent: 50, Highlight: true}}},
		},
		EndingPoint:      "/contact",
		TotalConversions: 120,
		MaxUsers:         100,
	}
}

func TestWritePathsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutWriter(nil).writePathsText(&buf, samplePaths(), &contract.Config{Width: 100}))

	out := buf.String()
	assert.Contains(t, out, "Path to Form Submission")
	assert.Contains(t, out, "Step 1")
	assert.Contains(t, out, "Step 2")
	assert.Contains(t, out, "3 More")
	assert.Contains(t, out, "→ /contact (120 conversions)")
}

func TestWritePathsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePathsCSV(&buf, samplePaths()))
	assert.Equal(t,
		"step,path,users,width_percent,highlight\n1,/home,100,100,false\n2,3 More,50,50,true\n",
		buf.String())
}

func TestWriteSankeyCSV(t *testing.T) {
	view := schema.SankeyView{Bars: []schema.FlowBar{
		{From: "Google", To: "/home", Users: 300, WidthPercent: 100, Share: 75},
		{From: "Direct", To: "/home", Users: 100, WidthPercent: 33.33, Share: 25},
	}}
	var buf bytes.Buffer
	require.NoError(t, writeSankeyCSV(&buf, view))
	assert.Equal(t,
		"from,to,users,width_percent,share\nGoogle,/home,300,100,75\nDirect,/home,100,33.33,25\n",
		buf.String())
}

func TestWriteSankeyParquet(t *testing.T) {
	view := schema.SankeyView{Bars: []schema.FlowBar{{From: "Google", To: "/home", Users: 300, WidthPercent: 100, Share: 100}}}
	path := filepath.Join(t.TempDir(), "flows.parquet")
	require.NoError(t, writeSankeyParquet(view, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	reader := parquet.NewGenericReader[pq.FlowRecord](f)
	defer func() { _ = reader.Close() }()
	rows := make([]pq.FlowRecord, 2)
	n, _ := reader.Read(rows)
	require.Equal(t, 1, n)
	assert.Equal(t, "Google", rows[0].From)
}

func TestWriteJourneyText(t *testing.T) {
	view := schema.JourneyView{
		Title:    "User Journey Distribution",
		Subtitle: "Top conversion paths • 1,000 total users",
		Rows: []schema.JourneyRow{
			{Label: "Home → Contact", Users: 250, Share: 25, Color: schema.JourneyPalette.At(0)},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, NewOutWriter(nil).writeJourneyText(&buf, view, &contract.Config{Width: 100}))
	assert.Contains(t, buf.String(), "Home → Contact")
	assert.Contains(t, buf.String(), "25.0%")
}

func TestWriteJourneyCSV(t *testing.T) {
	view := schema.JourneyView{Rows: []schema.JourneyRow{{Label: "A", Users: 10, Share: 1, Color: schema.RGB(3, 49, 128)}}}
	var buf bytes.Buffer
	require.NoError(t, writeJourneyCSV(&buf, view))
	assert.Equal(t, "journey,users,share,color\nA,10,1,#033180\n", buf.String())
}
