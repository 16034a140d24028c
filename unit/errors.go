package unit

import "errors"

var (
	ErrUnknownUnit          = errors.New("unknown unit")
	ErrMalformedExpression  = errors.New("malformed unit expression")
	ErrUnitMismatch         = errors.New("unit mismatch")
	ErrIncompatibleExponent = errors.New("incompatible exponent")
	ErrOffsetConversion     = errors.New("offset conversion not representable")
)

// MismatchError carries both unit tags of a failed dimension check. It
// matches ErrUnitMismatch under errors.Is.
type MismatchError struct {
	Left  string
	Right string
}

func NewMismatchError(left, right Resolved) error {
	return &MismatchError{
		Left:  left.String(),
		Right: right.String(),
	}
}

func (e *MismatchError) Error() string {
	l := e.Left
	if l == "" {
		l = "1"
	}

	r := e.Right
	if r == "" {
		r = "1"
	}

	return "unit mismatch: " + l + " vs " + r
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrUnitMismatch
}
