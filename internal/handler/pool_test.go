package handler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool_ResetsReturnedBuffers(t *testing.T) {
	buf := getBuffer()
	buf.WriteString(`{"nickname":"민수"}`)
	putBuffer(buf)

	again := getBuffer()
	defer putBuffer(again)
	assert.Zero(t, again.Len())
}

func TestBufferPool_DropsOversizedBuffers(t *testing.T) {
	big := bytes.NewBuffer(make([]byte, 0, maxPooledBufferSize+1))
	big.WriteString("x")
	putBuffer(big)

	// Dropped buffers keep their contents; pooled ones are reset.
	assert.Equal(t, 1, big.Len())
}
