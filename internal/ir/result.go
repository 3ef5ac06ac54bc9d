package ir

import (
	"fmt"
	"strings"
)

type Protocol int

const (
	Unknown Protocol = iota
	XMI
)

var protocolNames = map[Protocol]string{
	Unknown: "UNKNOWN",
	XMI:     "XMI",
}

func (p Protocol) String() string {
	if name, ok := protocolNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Protocol(%d)", int(p))
}

// ParseProtocol maps a protocol name back to its tag. Matching is case
// insensitive; unknown names return Unknown and false.
func ParseProtocol(name string) (Protocol, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for p, n := range protocolNames {
		if p != Unknown && n == name {
			return p, true
		}
	}
	return Unknown, false
}

// Result is a successful decode. Address and Command are left zero by
// protocols that do not split the value at the codec layer.
type Result struct {
	Protocol Protocol `json:"protocol"`
	Value    uint64   `json:"value"`
	Bits     uint16   `json:"bits"`
	Address  uint32   `json:"address"`
	Command  uint32   `json:"command"`
}

func (r Result) String() string {
	return fmt.Sprintf("%s bits=%d value=0x%X", r.Protocol, r.Bits, r.Value)
}
