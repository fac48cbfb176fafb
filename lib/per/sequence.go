package per

import (
	"github.com/pkg/errors"
)

// 19 Encoding the sequence type
// |- 19.1 Extensible: one bit, set when extension additions are present.
// |- 19.2 One bit per OPTIONAL or DEFAULT root component, set when present.
// |- 19.3 Root components follow in textual order.
// |- 19.7 / 19.8 When the extension bit is set: a normally small length n, an
// |  |  n-bit presence bitmap, then each present addition as an open type.

// EncodeSequencePreamble writes the extension bit (when extensible) followed
// by the presence bitmap of the optional root components.
func (e *Encoder) EncodeSequencePreamble(extensible, extended bool, optionals ...bool) error {
	if extensible {
		if err := e.EncodeBoolean(extended); err != nil {
			return err
		}
	} else if extended {
		return errors.New("extension additions on a non-extensible sequence")
	}
	for _, present := range optionals {
		if err := e.EncodeBoolean(present); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSequencePreamble reads what EncodeSequencePreamble writes; count is
// the number of optional root components.
func (d *Decoder) DecodeSequencePreamble(extensible bool, count int) (bool, []bool, error) {
	var extended bool
	if extensible {
		bit, err := d.DecodeBoolean()
		if err != nil {
			return false, nil, err
		}
		extended = bit
	}
	optionals := make([]bool, count)
	for i := range optionals {
		bit, err := d.DecodeBoolean()
		if err != nil {
			return false, nil, err
		}
		optionals[i] = bit
	}
	return extended, optionals, nil
}

// EncodeExtensionAdditions writes the extension addition group of a sequence
// whose extension bit was set. A nil entry is an absent addition.
func (e *Encoder) EncodeExtensionAdditions(additions ...Value) error {
	if _, _, err := e.EncodeNormallySmallLength(uint64(len(additions))); err != nil {
		return err
	}
	for _, addition := range additions {
		if err := e.EncodeBoolean(addition != nil); err != nil {
			return err
		}
	}
	for _, addition := range additions {
		if addition == nil {
			continue
		}
		if err := e.EncodeOpenType(addition); err != nil {
			return err
		}
	}
	return nil
}

// SkipExtensionAdditions consumes the extension addition group of a sequence
// whose extension bit was set. The additions are not understood and dropped.
func (d *Decoder) SkipExtensionAdditions() error {
	count, _, err := d.DecodeNormallySmallLength()
	if err != nil {
		return err
	}
	if count > d.codec.Remaining() {
		return errors.Wrapf(ErrInsufficientData, "bitmap of %d additions", count)
	}
	var present uint64
	for range count {
		bit, err := d.DecodeBoolean()
		if err != nil {
			return err
		}
		if bit {
			present++
		}
	}
	for range present {
		if _, err := d.DecodeOpenType(); err != nil {
			return err
		}
	}
	return nil
}

// 20 Encoding the sequence-of type
// |- 20.4 Extensible size: one bit, set when the count is outside the root; the
// |  |  count is then semi-constrained.
// |- 20.5 Fixed count < 64K: no length.
// |- 20.6 Otherwise: the count as a length determinant, fragmenting from 16K
// |  |  components on. Components carry their own alignment.

// EncodeSequenceOf writes items as a SEQUENCE (SIZE(lb..ub)) OF T.
func EncodeSequenceOf[T any, PT interface {
	*T
	Value
}](e *Encoder, items []T, lb, ub *uint64, extensible bool) error {
	n := uint64(len(items))
	write := func(from, to uint64) error {
		for i := from; i < to; i++ {
			if err := PT(&items[i]).Encode(e); err != nil {
				return errors.Wrapf(err, "item %d", i)
			}
		}
		return nil
	}

	if extensible {
		extended, err := e.extensionBit(n, lb, ub)
		if err != nil {
			return err
		}
		if extended {
			return e.encodeFragments(n, Bound[uint64](0), nil, false, write)
		}
	}
	if err := checkSize(n, lb, ub); err != nil {
		return err
	}
	if fixedSize(lb, ub) && *ub < MAX_CONSTRAINED_LENGTH {
		return write(0, n)
	}
	return e.encodeFragments(n, lb, ub, false, write)
}

// DecodeSequenceOf reads what EncodeSequenceOf writes.
func DecodeSequenceOf[T any, PT interface {
	*T
	Value
}](d *Decoder, lb, ub *uint64, extensible bool) ([]T, error) {
	var items []T
	read := func(n uint64) error {
		for range n {
			var item T
			if err := PT(&item).Decode(d); err != nil {
				return errors.Wrapf(err, "item %d", len(items))
			}
			items = append(items, item)
		}
		return nil
	}

	if extensible {
		extended, err := d.extensionBit()
		if err != nil {
			return nil, err
		}
		if extended {
			if _, err := d.decodeFragments(Bound[uint64](0), nil, false, read); err != nil {
				return nil, err
			}
			return items, nil
		}
	}
	if fixedSize(lb, ub) && *ub < MAX_CONSTRAINED_LENGTH {
		if err := read(*ub); err != nil {
			return nil, err
		}
		return items, nil
	}
	n, err := d.decodeFragments(lb, ub, false, read)
	if err != nil {
		return nil, err
	}
	if err := checkSize(n, lb, ub); err != nil {
		return nil, err
	}
	return items, nil
}
