package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]any{"data": []int{1}}, false))
	assert.Equal(t, "{\"data\":[1]}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, map[string]any{"data": 1}, true))
	assert.Equal(t, "{\n  \"data\": 1\n}\n", buf.String())

	assert.Error(t, WriteJSON(&buf, make(chan int), false))
}
