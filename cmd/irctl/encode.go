package main

import (
	"fmt"
	"strings"

	"github.com/danmuck/irctl/internal/capture"
	"github.com/danmuck/irctl/internal/ir"
	"github.com/danmuck/irctl/internal/ir/xmi"
	"github.com/danmuck/irctl/internal/observability"
	"github.com/danmuck/irctl/internal/service"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

type encodeOutput struct {
	Protocol    string   `json:"protocol"`
	Value       string   `json:"value"`
	Bits        uint16   `json:"bits"`
	Repeat      uint16   `json:"repeat"`
	Durations   []uint32 `json:"durations"`
	CarrierHz   uint32   `json:"carrier_hz"`
	DutyPercent uint8    `json:"duty_percent"`
}

func runEncode(args []string, e env) error {
	var common commonFlags
	fs := newFlagSet("encode", e, &common)
	bits := fs.Uint16P("bits", "b", xmi.Bits, "payload width in bits (even, 2-64)")
	repeat := fs.Uint16P("repeat", "r", xmi.MinRepeat, "extra frames to send")
	format := fs.StringP("format", "f", "list", "output format: list, rawdata, mode2, json")
	name := fs.String("name", "rawData", "array name for rawdata output")
	quiet := fs.BoolP("quiet", "q", false, "omit the timing summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one VALUE")
	}

	cfg, err := loadConfig(common)
	if err != nil {
		return err
	}
	if !fs.Changed("bits") {
		*bits = cfg.Codec.Bits
	}
	if !fs.Changed("repeat") {
		*repeat = cfg.Codec.Repeat
	}

	value, err := service.ParseValue(fs.Arg(0))
	if err != nil {
		return err
	}
	durations, err := xmi.Encode(value, *bits, *repeat)
	observability.RecordEncode(ir.XMI.String(), xmi.Kind(err))
	if err != nil {
		return err
	}
	log.Debug().Uint64("value", value).Uint16("bits", *bits).Uint16("repeat", *repeat).Int("entries", len(durations)).Msg("encoded")

	switch strings.ToLower(*format) {
	case "list":
		fmt.Fprintln(e.stdout, capture.FormatList(durations))
	case "rawdata":
		fmt.Fprintf(e.stdout, "%s  // XMI 0x%X\n", capture.FormatRawData(*name, durations), value)
	case "mode2":
		fmt.Fprint(e.stdout, capture.FormatMode2(durations))
	case "json":
		out, err := json.MarshalIndent(encodeOutput{
			Protocol:    ir.XMI.String(),
			Value:       fmt.Sprintf("0x%X", value),
			Bits:        *bits,
			Repeat:      *repeat,
			Durations:   durations,
			CarrierHz:   xmi.CarrierHz,
			DutyPercent: xmi.DutyPercent,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, string(out))
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	if !*quiet {
		fmt.Fprintln(e.stderr, summary(durations, *repeat))
	}
	return nil
}

func summary(durations []uint32, repeat uint16) string {
	var total uint64
	for _, d := range durations {
		total += uint64(d)
	}
	return fmt.Sprintf("XMI: %d frame(s), %s entries, %s µs on air, carrier %s Hz @ %d%%",
		uint64(repeat)+1,
		humanize.Comma(int64(len(durations))),
		humanize.Comma(int64(total)),
		humanize.Comma(xmi.CarrierHz),
		xmi.DutyPercent,
	)
}
