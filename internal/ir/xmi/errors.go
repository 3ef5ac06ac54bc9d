package xmi

import "errors"

var (
	ErrOddBitCount   = errors.New("xmi: bit count must be even")
	ErrBitCountRange = errors.New("xmi: bit count out of range")

	ErrInsufficientData   = errors.New("xmi: insufficient data")
	ErrNonCompliantLength = errors.New("xmi: non-compliant length")
	ErrHeaderMismatch     = errors.New("xmi: header mismatch")
	ErrBitMismatch        = errors.New("xmi: bit mismatch")
	ErrFooterMismatch     = errors.New("xmi: footer mismatch")
	ErrBitCountMismatch   = errors.New("xmi: bit count mismatch")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrOddBitCount, "odd_bit_count"},
	{ErrBitCountRange, "bit_count_range"},
	{ErrInsufficientData, "insufficient_data"},
	{ErrNonCompliantLength, "non_compliant_length"},
	{ErrHeaderMismatch, "header_mismatch"},
	{ErrBitMismatch, "bit_mismatch"},
	{ErrFooterMismatch, "footer_mismatch"},
	{ErrBitCountMismatch, "bit_count_mismatch"},
}

// Kind returns a stable label for err, suitable for metrics. nil is "ok"
// and errors from outside this package are "other".
func Kind(err error) string {
	if err == nil {
		return "ok"
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "other"
}
