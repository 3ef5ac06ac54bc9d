package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolNames(t *testing.T) {
	assert.Equal(t, "XMI", XMI.String())
	assert.Equal(t, "Protocol(42)", Protocol(42).String())

	p, ok := ParseProtocol(" xmi ")
	assert.True(t, ok)
	assert.Equal(t, XMI, p)

	p, ok = ParseProtocol("UNKNOWN")
	assert.False(t, ok)
	assert.Equal(t, Unknown, p)
}

func TestResultString(t *testing.T) {
	r := Result{Protocol: XMI, Value: 0x3A5, Bits: 20}
	assert.Equal(t, "XMI bits=20 value=0x3A5", r.String())
}
