package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "svg"}, Formats())
}

func TestGet(t *testing.T) {
	for _, name := range Formats() {
		fn, err := Get(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn, name)

		var buf bytes.Buffer
		require.NoError(t, fn(&buf, standardPayload(20)), name)
		assert.NotZero(t, buf.Len(), name)
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "png")
	assert.Contains(t, err.Error(), "svg")
}

func TestGetScan(t *testing.T) {
	for _, name := range Formats() {
		fn, err := GetScan(name)
		require.NoError(t, err, name)

		var buf bytes.Buffer
		require.NoError(t, fn(&buf, standardPayload(20)), name)
		assert.NotZero(t, buf.Len(), name)
	}

	_, err := GetScan("png")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteSVGFormat(t *testing.T) {
	fn, err := Get("svg")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fn(&buf, standardPayload(100)))
	assert.True(t, strings.HasSuffix(buf.String(), "</svg>"))
}
