package rawuri

// Error is a string type that implements the error interface.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrMissingScheme is returned by [Parse] when the input contains no ':'
	// and therefore no scheme component.
	ErrMissingScheme Error = "missing scheme"

	// ErrInvalidEscape is returned by [Unescape] when a '%' is followed by
	// fewer than two bytes or by bytes that are not hexadecimal digits.
	ErrInvalidEscape Error = "invalid percent escape"
)
