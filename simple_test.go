package termascii_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termascii"
	"github.com/srlehn/termascii/internal/testutil"
)

func TestString(t *testing.T) {
	enc := testutil.EncodePNG(t, testutil.Uniform(4, 2, testutil.Black))

	// fitted into the terminal or the fallback box, the aspect ratio is kept
	out, err := termascii.String(termascii.NewImageBytes(enc))
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.NotEmpty(t, rows)
	width := len(rows[0]) / 2
	assert.InDelta(t, 2*len(rows), width, 1)
	for _, row := range rows {
		assert.Equal(t, strings.Repeat(`$ `, width), row)
	}

	_, err = termascii.String(termascii.NewImageBytes([]byte(`no image`)))
	assert.Error(t, err)
}
