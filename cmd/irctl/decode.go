package main

import (
	"fmt"
	"strings"

	"github.com/danmuck/irctl/internal/capture"
	"github.com/danmuck/irctl/internal/ir"
	"github.com/danmuck/irctl/internal/ir/xmi"
	"github.com/danmuck/irctl/internal/observability"
	"github.com/rs/zerolog/log"
)

type decodeOutput struct {
	Protocol string `json:"protocol"`
	Value    string `json:"value"`
	Bits     uint16 `json:"bits"`
	Address  uint32 `json:"address"`
	Command  uint32 `json:"command"`
	Source   string `json:"source"`
}

func runDecode(args []string, e env) error {
	var common commonFlags
	fs := newFlagSet("decode", e, &common)
	bits := fs.Uint16P("bits", "b", xmi.Bits, "expected payload width in bits")
	strict := fs.BoolP("strict", "s", true, "enforce minimum length and exact bit count")
	offset := fs.IntP("offset", "o", 0, "index of the header mark in the capture")
	format := fs.StringP("format", "f", "text", "output format: text, json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one FILE")
	}

	cfg, err := loadConfig(common)
	if err != nil {
		return err
	}

	c, err := readCapture(fs.Arg(0), e)
	if err != nil {
		return err
	}

	// Flags beat the capture file, which beats the config.
	if !fs.Changed("bits") {
		*bits = c.BitsOr(cfg.Codec.Bits)
	}
	if !fs.Changed("strict") {
		*strict = c.StrictOr(cfg.Codec.Strict)
	}
	if !fs.Changed("offset") {
		*offset = cfg.Codec.Offset
		if c.Offset != 0 {
			*offset = c.Offset
		}
	}

	res, err := xmi.DecodeWith(cfg.Matcher(), c.Durations, *offset, *bits, *strict)
	observability.RecordDecode(ir.XMI.String(), xmi.Kind(err))
	if err != nil {
		log.Debug().Err(err).Str("source", c.Source).Int("entries", len(c.Durations)).Msg("decode failed")
		return err
	}

	switch strings.ToLower(*format) {
	case "text":
		fmt.Fprintln(e.stdout, res.String())
	case "json":
		out, err := json.MarshalIndent(decodeOutput{
			Protocol: res.Protocol.String(),
			Value:    fmt.Sprintf("0x%X", res.Value),
			Bits:     res.Bits,
			Address:  res.Address,
			Command:  res.Command,
			Source:   c.Source,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, string(out))
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
	return nil
}

func readCapture(path string, e env) (capture.Capture, error) {
	if path == "" || path == "-" {
		c, err := capture.Parse(e.stdin)
		if err != nil {
			return capture.Capture{}, err
		}
		c.Source = "stdin"
		return c, nil
	}
	return capture.LoadFile(path)
}
