package geometry_test

import (
	"bytes"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termascii/geometry"
	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
	"github.com/srlehn/termascii/internal/logx"
	"github.com/srlehn/termascii/termsize"
)

type failingSizer struct{}

func (failingSizer) SizeInCells() (uint, uint, error) { return 0, 0, consts.ErrNoTerminal }

func TestScale(t *testing.T) {
	tests := map[string]struct {
		src   image.Point
		scale uint8
		want  image.Point
	}{
		"identity":        {image.Pt(640, 480), 100, image.Pt(640, 480)},
		"half":            {image.Pt(640, 480), 50, image.Pt(320, 240)},
		"round half up":   {image.Pt(1, 3), 50, image.Pt(1, 2)},
		"round down":      {image.Pt(7, 7), 10, image.Pt(1, 1)},
		"round to zero":   {image.Pt(4, 4), 10, image.Pt(0, 0)},
		"max scale":       {image.Pt(2, 3), 255, image.Pt(5, 8)},
		"empty source":    {image.Pt(0, 0), 100, image.Pt(0, 0)},
		"one side empty":  {image.Pt(10, 0), 150, image.Pt(15, 0)},
		"upscale rounded": {image.Pt(3, 5), 150, image.Pt(5, 8)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, geometry.Scale(tc.src, tc.scale))
		})
	}
}

func TestFit(t *testing.T) {
	tests := map[string]struct {
		src, bounds, want image.Point
	}{
		"wide":         {image.Pt(200, 100), image.Pt(40, 40), image.Pt(40, 20)},
		"tall":         {image.Pt(100, 200), image.Pt(40, 40), image.Pt(20, 40)},
		"upscale":      {image.Pt(2, 1), image.Pt(40, 24), image.Pt(40, 20)},
		"thin":         {image.Pt(1000, 1), image.Pt(40, 24), image.Pt(40, 1)},
		"empty bounds": {image.Pt(10, 10), image.Pt(0, 24), image.Pt(0, 0)},
		"empty source": {image.Pt(0, 10), image.Pt(40, 24), image.Pt(0, 0)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, geometry.Fit(tc.src, tc.bounds))
		})
	}
}

func TestResolveScale(t *testing.T) {
	g, err := geometry.Resolve(image.Pt(30, 20), 100, failingSizer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(30, 20), g.Target)
	assert.False(t, g.NeedsResize())
	assert.False(t, g.Empty())
	assert.Equal(t, uint64(600), g.Pixels())
}

func TestResolveTerminal(t *testing.T) {
	g, err := geometry.Resolve(image.Pt(400, 200), 0, termsize.Fixed{Cols: 80, Rows: 24}, nil)
	require.NoError(t, err)
	// 80 columns hold 40 pixels
	assert.Equal(t, image.Pt(40, 20), g.Target)
	assert.True(t, g.NeedsResize())
}

func TestResolveFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := logx.New(&buf, slog.LevelWarn)
	g, err := geometry.Resolve(image.Pt(100, 100), 0, failingSizer{}, logx.Prov(logger))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(consts.FallbackCols/geometry.CellsPerPixel, consts.FallbackCols/geometry.CellsPerPixel), g.Target)
	assert.Contains(t, buf.String(), `terminal size unavailable`)

	buf.Reset()
	g, err = geometry.Resolve(image.Pt(100, 100), 0, nil, logx.Prov(logger))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(25, 25), g.Target)
	assert.Contains(t, buf.String(), `default size`)
}

func TestResolveEmpty(t *testing.T) {
	g, err := geometry.Resolve(image.Pt(4, 4), 10, nil, nil)
	require.NoError(t, err)
	assert.True(t, g.Empty())
	assert.Zero(t, g.Pixels())
}

func TestResolveTooLarge(t *testing.T) {
	_, err := geometry.Resolve(image.Pt(1<<20, 1<<20), 200, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, consts.ErrImageTooLarge))
	assert.Contains(t, err.Error(), `image too large`)
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, geometry.CheckSize(image.Pt(65535, 65535)))
	assert.NoError(t, geometry.CheckSize(image.Pt(0, 1<<40)))
	assert.Error(t, geometry.CheckSize(image.Pt(65536, 65536)))
}

func TestResolveNegative(t *testing.T) {
	_, err := geometry.Resolve(image.Pt(-1, 4), 100, nil, nil)
	assert.Error(t, err)
}
