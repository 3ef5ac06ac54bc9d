package capture

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	rawDataDecl = regexp.MustCompile(`\[\s*(\d*)\s*\]\s*=\s*\{`)
	mode2Line   = regexp.MustCompile(`(?m)^\s*(pulse|space|timeout)\s+\d+`)
)

// Parse reads a textual trace. The format is detected from the content.
func Parse(r io.Reader) (Capture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Capture{}, fmt.Errorf("capture: read: %w", err)
	}
	return ParseBytes(data)
}

func ParseBytes(data []byte) (Capture, error) {
	var (
		c   Capture
		err error
	)
	switch {
	case mode2Line.Match(data):
		c.Durations, err = parseMode2(data)
	case bytes.ContainsRune(data, '{'):
		c.Durations, err = parseRawData(data)
	default:
		c.Durations, err = parseList(string(data))
	}
	if err != nil {
		return Capture{}, err
	}
	if err := c.validate(); err != nil {
		return Capture{}, err
	}
	return c, nil
}

func parseList(text string) ([]uint32, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]uint32, 0, len(fields))
	for _, f := range fields {
		v, err := parseDuration(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseDuration(tok string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}
	return uint32(v), nil
}

// parseRawData handles `uint16_t rawData[24] = {1014, 598, ...};`. A
// declared length must agree with the element count.
func parseRawData(data []byte) ([]uint32, error) {
	text := stripComments(string(data))
	open := strings.IndexByte(text, '{')
	end := strings.IndexByte(text, '}')
	if end < open {
		return nil, fmt.Errorf("%w: unterminated initialiser", ErrBadToken)
	}
	out, err := parseList(text[open+1 : end])
	if err != nil {
		return nil, err
	}
	if m := rawDataDecl.FindStringSubmatch(text[:open+1]); m != nil && m[1] != "" {
		declared, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, m[1])
		}
		if declared != len(out) {
			return nil, fmt.Errorf("%w: declared %d, found %d", ErrLengthMismatch, declared, len(out))
		}
	}
	return out, nil
}

func stripComments(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// parseMode2 reads LIRC mode2 output. Spaces before the first pulse are
// dropped, timeouts are ignored and runs of the same kind are merged.
func parseMode2(data []byte) ([]uint32, error) {
	var out []uint32
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, line)
		}
		v, err := parseDuration(fields[1])
		if err != nil {
			return nil, err
		}
		switch fields[0] {
		case "pulse":
			if len(out)%2 == 1 {
				out[len(out)-1] += v
			} else {
				out = append(out, v)
			}
		case "space":
			if len(out) == 0 {
				continue
			}
			if len(out)%2 == 0 {
				out[len(out)-1] += v
			} else {
				out = append(out, v)
			}
		case "timeout":
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadToken, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("capture: scan: %w", err)
	}
	return out, nil
}
