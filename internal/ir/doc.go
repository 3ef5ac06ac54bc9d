// Package ir owns the protocol-independent infrared primitives.
//
// Ownership boundary:
// - duration matching with tolerance and mark excess
// - capture cursor over raw mark/space durations
// - pulse sink and elapsed-time source contracts
// - decode result and protocol tags
package ir
