package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termascii/internal/errors"
)

func TestNilChecks(t *testing.T) {
	var nilPtr *int
	tests := map[string]struct {
		err     error
		wantErr bool
	}{
		"param without args":    {errors.NilParam(), true},
		"param nil arg":         {errors.NilParam(1, nil), true},
		"param set args":        {errors.NilParam(1, `a`), false},
		"param typed nil":       {errors.NilParam(nilPtr), false},
		"receiver without args": {errors.NilReceiver(), true},
		"receiver nil arg":      {errors.NilReceiver(nil), true},
		"receiver set args":     {errors.NilReceiver(struct{}{}), false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if !tc.wantErr {
				assert.NoError(t, tc.err)
				return
			}
			require.Error(t, tc.err)
			assert.Contains(t, tc.err.Error(), `TestNilChecks`)
		})
	}
}

func TestNew(t *testing.T) {
	assert.Nil(t, errors.New(nil))
	err := errors.New(`failed`)
	require.Error(t, err)
	assert.Same(t, err, errors.New(err))
	assert.Contains(t, errors.Stack(err), `errors_test.go`)
	assert.Empty(t, errors.Stack(nil))
}

func TestRecovered(t *testing.T) {
	assert.NoError(t, errors.Recovered(nil, `worker`))
	err := errors.Recovered(`boom`, `worker`)
	require.Error(t, err)
	assert.Equal(t, `worker: boom`, err.Error())
}
