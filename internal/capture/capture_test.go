package capture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/irctl/internal/ir/xmi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []uint32
	}{
		{name: "comma list", in: "1014, 598,598 ,910", want: []uint32{1014, 598, 598, 910}},
		{name: "whitespace list", in: "1014\n598\t598  910\n", want: []uint32{1014, 598, 598, 910}},
		{
			name: "raw data dump",
			in:   "uint16_t rawData[4] = {1014, 598, 598, 910};  // XMI 3A5",
			want: []uint32{1014, 598, 598, 910},
		},
		{
			name: "raw data without length",
			in:   "const uint16_t x[] = {\n  1014, 598, // header\n  598, 910\n};",
			want: []uint32{1014, 598, 598, 910},
		},
		{
			name: "mode2",
			in:   "space 16777215\npulse 1014\nspace 598\npulse 598\nspace 500\nspace 410\n# note\ntimeout 20000\n",
			want: []uint32{1014, 598, 598, 910},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Durations)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty", in: "  \n", want: ErrEmpty},
		{name: "letters", in: "1014, abc", want: ErrBadToken},
		{name: "negative", in: "1014 -598", want: ErrBadToken},
		{name: "declared length", in: "uint16_t rawData[3] = {1, 2};", want: ErrLengthMismatch},
		{name: "unterminated", in: "uint16_t rawData[2] = {1, 2", want: ErrBadToken},
		{name: "mode2 garbage", in: "pulse 100\nspace\n", want: ErrBadToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatsParseBack(t *testing.T) {
	raw, err := xmi.Encode(0x3A5, 20, 0)
	require.NoError(t, err)

	for name, text := range map[string]string{
		"list":    FormatList(raw),
		"rawdata": FormatRawData("", raw),
		"mode2":   FormatMode2(raw),
	} {
		got, err := ParseBytes([]byte(text))
		require.NoError(t, err, name)
		assert.Equal(t, raw, got.Durations, name)
	}
	assert.True(t, strings.HasPrefix(FormatRawData("xmi", raw), "uint16_t xmi[24] = {1014, 598,"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"trace.yaml":      "durations: [1014, 598, 598, 910]\nbits: 2\nstrict: false\noffset: 0\n",
		"list.yml":        "- 1014\n- 598\n- 598\n- 910\n",
		"trace.json":      `{"durations": [1014, 598, 598, 910], "bits": 2, "strict": false}`,
		"list.json":       `[1014, 598, 598, 910]`,
		"trace.toml":      "durations = [1014, 598, 598, 910]\nbits = 2\nstrict = false\n",
		"trace.txt":       "1014 598 598 910",
		"rawdata.h":       "uint16_t rawData[4] = {1014, 598, 598, 910};",
		"trace.mode2.log": "pulse 1014\nspace 598\npulse 598\nspace 910\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		c, err := LoadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, []uint32{1014, 598, 598, 910}, c.Durations, name)
		assert.Equal(t, path, c.Source)
		if strings.HasPrefix(name, "trace.") && !strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".log") {
			assert.Equal(t, uint16(2), c.BitsOr(20), name)
			assert.False(t, c.StrictOr(true), name)
		}
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"durations": "nope"}`), 0o600))
	_, err = LoadFile(bad)
	require.ErrorIs(t, err, ErrBadToken)

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("bits = 20\n"), 0o600))
	_, err = LoadFile(empty)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Unmarshal(Format("xml"), []byte("<x/>"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDefaults(t *testing.T) {
	var c Capture
	assert.Equal(t, uint16(xmi.Bits), c.BitsOr(xmi.Bits))
	assert.True(t, c.StrictOr(true))
}
