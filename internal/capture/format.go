package capture

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatList renders durations as a comma separated list.
func FormatList(d []uint32) string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ", ")
}

// FormatRawData renders durations as a C array that Parse reads back.
func FormatRawData(name string, d []uint32) string {
	if name == "" {
		name = "rawData"
	}
	return fmt.Sprintf("uint16_t %s[%d] = {%s};", name, len(d), FormatList(d))
}

// FormatMode2 renders durations as LIRC mode2 lines.
func FormatMode2(d []uint32) string {
	var b strings.Builder
	for i, v := range d {
		kind := "pulse"
		if i%2 == 1 {
			kind = "space"
		}
		fmt.Fprintf(&b, "%s %d\n", kind, v)
	}
	return b.String()
}
