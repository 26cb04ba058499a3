package render

import (
	"bytes"
	"image/png"
	"testing"

	"SpaceXLaunchDashboard/internal/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSize(t *testing.T, b []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestPiePNG(t *testing.T) {
	var buf bytes.Buffer
	c := dashboard.PieChart{
		Kind:  dashboard.KindPie,
		Title: "Total Successful Launches By Site",
		Slices: []dashboard.PieSlice{
			{Label: "CCAFS LC-40", Value: 7},
			{Label: "CCAFS SLC-40", Value: 3},
			{Label: "KSC LC-39A", Value: 10},
			{Label: "VAFB SLC-4E", Value: 0},
		},
	}

	require.NoError(t, PiePNG(&buf, c, 640, 400))

	w, h := decodeSize(t, buf.Bytes())
	assert.Equal(t, 640, w)
	assert.Equal(t, 400, h)
}

func TestPiePNG_EmptyIsBlank(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PiePNG(&buf, dashboard.PieChart{Title: "empty"}, 0, 0))

	w, h := decodeSize(t, buf.Bytes())
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestScatterPNG(t *testing.T) {
	var buf bytes.Buffer
	c := dashboard.ScatterChart{
		Kind:       dashboard.KindScatter,
		Title:      "Correlation between Payload and Success for All Sites",
		XLabel:     dashboard.LabelPayloadMass,
		YLabel:     dashboard.LabelClass,
		Categories: []string{"FT", "B4"},
		Points: []dashboard.ScatterPoint{
			{X: 2490, Y: 1, Category: "FT"},
			{X: 5600, Y: 0, Category: "FT"},
			{X: 3310, Y: 1, Category: "B4"},
			{X: 4230, Y: 1, Category: "B4"},
		},
	}

	require.NoError(t, ScatterPNG(&buf, c, 0, 0))

	w, h := decodeSize(t, buf.Bytes())
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestScatterPNG_EmptyIsBlank(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ScatterPNG(&buf, dashboard.ScatterChart{}, 300, 300))

	w, h := decodeSize(t, buf.Bytes())
	assert.Equal(t, 300, w)
	assert.Equal(t, 300, h)
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{0, 0, DefaultWidth, DefaultHeight},
		{10, 10, MinSize, MinSize},
		{5000, 900, MaxSize, 900},
		{-3, 3000, MinSize, MaxSize},
	}
	for _, tt := range tests {
		w, h := ClampSize(tt.w, tt.h)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}

func TestXBounds_SinglePoint(t *testing.T) {
	lo, hi := xBounds([]dashboard.ScatterPoint{{X: 1000}})

	assert.Less(t, lo, 1000.0)
	assert.Greater(t, hi, 1000.0)
}
