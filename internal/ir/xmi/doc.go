// Package xmi encodes and decodes the Xiaomi MI infrared protocol.
//
// A frame is a header mark/space pair, one bit mark plus one of four space
// lengths per 2-bit symbol (most significant symbol first), a closing bit
// mark and a gap that pads the frame to a fixed repeat length. The carrier
// is 38 kHz at 33% duty.
//
// Both directions are pure functions of their inputs. The decoder recovers
// the transmitter's tick length from the header, so uniform clock drift
// does not eat into the matching tolerance.
package xmi
