package per

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/bitbuffer"
)

var (
	// ErrInsufficientData is returned when the input ends inside a field.
	ErrInsufficientData = bitbuffer.ErrInsufficientData

	// ErrOutOfRange is returned for a whole number outside its constraint.
	ErrOutOfRange = errors.New("value out of range")

	// ErrSizeConstraint is returned for a length or count outside its SIZE constraint.
	ErrSizeConstraint = errors.New("size constraint violated")

	// ErrUnknownChoice is returned for a CHOICE index with no known alternative.
	ErrUnknownChoice = errors.New("unknown choice alternative")

	// ErrInvalidCharacter is returned for a character outside the permitted alphabet.
	ErrInvalidCharacter = errors.New("character outside permitted alphabet")
)

func outOfRange(n, lb, ub int64) error {
	return errors.Wrapf(ErrOutOfRange, "%d not in %d..%d", n, lb, ub)
}

func sizeViolation(n uint64, lb, ub *uint64) error {
	lower, upper := "0", "MAX"
	if lb != nil {
		lower = strconv.FormatUint(*lb, 10)
	}
	if ub != nil {
		upper = strconv.FormatUint(*ub, 10)
	}
	return errors.Wrapf(ErrSizeConstraint, "size %d not in %s..%s", n, lower, upper)
}
