package s1ap

import (
	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/per"
)

// choice holds the live alternative of a CHOICE. present is the alternative
// index plus one, zero meaning nothing was chosen.
type choice struct {
	present uint8
	value   per.Value
}

func (c *choice) set(present uint8, value per.Value) {
	c.present = present
	c.value = value
}

// alternativeOf returns the value of alternative present, or false when
// another alternative is live.
func alternativeOf[T any](c choice, present uint8) (T, bool) {
	var zero T
	if c.present != present || c.value == nil {
		return zero, false
	}
	value, ok := any(c.value).(*T)
	if !ok {
		return zero, false
	}
	return *value, true
}

// encode writes the index of the live alternative and its value, as an open
// type for extension alternatives.
func (c *choice) encode(e *per.Encoder, kind string, root uint64, extensible bool) error {
	if c.present == 0 || c.value == nil {
		return errors.Wrapf(per.ErrUnknownChoice, "%s: nothing chosen", kind)
	}
	index := uint64(c.present - 1)
	if err := e.EncodeChoiceIndex(index, root, extensible); err != nil {
		return errors.Wrap(err, kind)
	}
	if index >= root {
		return e.EncodeOpenType(c.value)
	}
	return c.value.Encode(e)
}

// decode reads a CHOICE; alternatives builds an empty value per known
// alternative index. An unknown extension alternative is consumed and
// reported as per.ErrUnknownChoice.
func (c *choice) decode(d *per.Decoder, kind string, root uint64, extensible bool, alternatives ...func() per.Value) error {
	index, extended, err := d.DecodeChoiceIndex(root, extensible)
	if err != nil {
		return errors.Wrap(err, kind)
	}
	if index >= uint64(len(alternatives)) {
		if extended {
			if _, err := d.DecodeOpenType(); err != nil {
				return err
			}
		}
		return errors.Wrapf(per.ErrUnknownChoice, "%s alternative %d", kind, index)
	}
	value := alternatives[index]()
	if extended {
		err = d.DecodeOpenTypeInto(value)
	} else {
		err = value.Decode(d)
	}
	if err != nil {
		return err
	}
	c.set(uint8(index+1), value)
	return nil
}

// fixedBits is a BIT STRING (SIZE(size)) alternative held as a number.
type fixedBits struct {
	size  uint64
	value uint64
}

func (b *fixedBits) Encode(e *per.Encoder) error {
	return encodeBits(e, b.value, b.size, false)
}

func (b *fixedBits) Decode(d *per.Decoder) (err error) {
	b.value, err = decodeBits(d, b.size, false)
	return
}
