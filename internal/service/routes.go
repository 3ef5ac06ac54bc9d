package service

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danmuck/irctl/internal/ir"
	"github.com/danmuck/irctl/internal/ir/xmi"
	"github.com/danmuck/irctl/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

var ErrBadValue = errors.New("service: invalid value")

type encodeRequest struct {
	Value  string  `json:"value" binding:"required"`
	Bits   *uint16 `json:"bits"`
	Repeat *uint16 `json:"repeat"`
}

type encodeResponse struct {
	Protocol    string   `json:"protocol"`
	Value       string   `json:"value"`
	Bits        uint16   `json:"bits"`
	Repeat      uint16   `json:"repeat"`
	Durations   []uint32 `json:"durations"`
	CarrierHz   uint32   `json:"carrier_hz"`
	DutyPercent uint8    `json:"duty_percent"`
}

type decodeRequest struct {
	Durations []uint32 `json:"durations"`
	Offset    *int     `json:"offset"`
	Bits      *uint16  `json:"bits"`
	Strict    *bool    `json:"strict"`
}

type decodeResponse struct {
	Protocol string `json:"protocol"`
	Value    string `json:"value"`
	Bits     uint16 `json:"bits"`
	Address  uint32 `json:"address"`
	Command  uint32 `json:"command"`
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": version,
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"service":   s.ID,
			"protocols": []string{ir.XMI.String()},
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1/xmi")
	v1.POST("/encode", s.handleEncode)
	v1.POST("/decode", s.handleDecode)
}

func (s *Server) handleEncode(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	value, err := ParseValue(req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bits := valueOr(req.Bits, s.codec.Bits)
	repeat := valueOr(req.Repeat, s.codec.Repeat)

	durations, err := xmi.Encode(value, bits, repeat)
	observability.RecordEncode(ir.XMI.String(), xmi.Kind(err))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": xmi.Kind(err)})
		return
	}
	c.JSON(http.StatusOK, encodeResponse{
		Protocol:    ir.XMI.String(),
		Value:       formatValue(value),
		Bits:        bits,
		Repeat:      repeat,
		Durations:   durations,
		CarrierHz:   xmi.CarrierHz,
		DutyPercent: xmi.DutyPercent,
	})
}

func (s *Server) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	offset := valueOr(req.Offset, s.codec.Offset)
	bits := valueOr(req.Bits, s.codec.Bits)
	strict := valueOr(req.Strict, s.codec.Strict)

	res, err := xmi.DecodeWith(s.matcher, req.Durations, offset, bits, strict)
	kind := xmi.Kind(err)
	observability.RecordDecode(ir.XMI.String(), kind)
	if err != nil {
		log.Debug().Err(err).Int("entries", len(req.Durations)).Int("offset", offset).Msg("decode rejected")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": kind})
		return
	}
	c.JSON(http.StatusOK, decodeResponse{
		Protocol: res.Protocol.String(),
		Value:    formatValue(res.Value),
		Bits:     res.Bits,
		Address:  res.Address,
		Command:  res.Command,
	})
}

// ParseValue accepts decimal, 0x hex, 0o octal or 0b binary.
func ParseValue(raw string) (uint64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "_", "")
	v, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, raw)
	}
	return v, nil
}

func formatValue(v uint64) string {
	return fmt.Sprintf("0x%X", v)
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
