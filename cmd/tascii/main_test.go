package main

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termascii/internal/testutil"
)

func whiteAndClear(t *testing.T) string {
	m := testutil.Uniform(2, 2, testutil.White)
	m.SetNRGBA(0, 1, testutil.Black)
	m.SetNRGBA(1, 1, color.NRGBA{0, 0, 0, 0})
	return testutil.WritePNG(t, m)
}

func run(args ...string) (stdout, stderr string, exitCode int) {
	var outBuf, errBuf bytes.Buffer
	exitCode = execute(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), exitCode
}

func TestNoArgs(t *testing.T) {
	stdout, stderr, code := run()
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `Usage:`)
	assert.Contains(t, stderr, `--contrast`)
}

func TestConvert(t *testing.T) {
	img := whiteAndClear(t)
	tests := map[string]struct {
		args []string
		want string
	}{
		"positional":      {[]string{img}, "    \n$ $ \n"},
		"path flag":       {[]string{`--path`, img}, "    \n$ $ \n"},
		"short flags":     {[]string{`-p`, img, `-s`, `100`, `-c`, `0`}, "    \n$ $ \n"},
		"no background":   {[]string{`-n`, img}, "    \n$   \n"},
		"threads":         {[]string{`-t`, `2`, `--no-bg`, img}, "    \n$   \n"},
		"color to a pipe": {[]string{`--color`, img}, "    \n$ $ \n"},
		"scale":           {[]string{`-s`, `50`, `-r`, `imaging`, testutil.WritePNG(t, testutil.Uniform(2, 2, testutil.White))}, "  \n"},
		"scale empty":     {[]string{`-s`, `1`, img}, ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, code := run(tc.args...)
			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestFailures(t *testing.T) {
	img := whiteAndClear(t)
	missing := filepath.Join(t.TempDir(), `missing.png`)
	tests := map[string][]string{
		"missing file":     {missing},
		"not an image":     {writeText(t)},
		"contrast range":   {`-c`, `200`, img},
		"scale range":      {`-s`, `256`, img},
		"unknown resizer":  {`-r`, `lanczos`, img},
		"negative threads": {`-t`, `-1`, img},
		"two paths":        {`-p`, img, missing},
		"unknown flag":     {`--frobnicate`, img},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, code := run(args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, `error`)
		})
	}
}

func writeText(t *testing.T) string {
	fileName := filepath.Join(t.TempDir(), `text.png`)
	require.NoError(t, os.WriteFile(fileName, []byte(`not an image`), 0o644))
	return fileName
}

func TestSilent(t *testing.T) {
	stdout, stderr, code := run(`-q`, filepath.Join(t.TempDir(), `missing.png`))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestDebugStack(t *testing.T) {
	_, stderr, code := run(`-d`, filepath.Join(t.TempDir(), `missing.png`))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `level=DEBUG`)
	assert.Contains(t, stderr, `.go:`)
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestOutputClosed(t *testing.T) {
	var errBuf bytes.Buffer
	code := execute(context.Background(), []string{whiteAndClear(t)}, closedWriter{}, &errBuf)
	assert.Equal(t, 0, code)
	assert.Contains(t, errBuf.String(), `output closed`)
	assert.True(t, strings.Contains(errBuf.String(), `level=WARN`))
}
