package per

import (
	"github.com/pkg/errors"
)

// 23 Encoding the choice type
// |- 23.6 / 23.7 Extensible: one bit, set when an extension alternative is chosen.
// |- 23.6 Root alternative: the index as a constrained whole number 0..root-1;
// |  |  nothing is written for a single alternative.
// |- 23.8 Extension alternative: its index counted from the first addition as a
// |  |  normally small number, the value following as an open type.

// EncodeChoiceIndex writes the index of the chosen alternative. root is the
// number of root alternatives; indexes from root on are extension additions.
func (e *Encoder) EncodeChoiceIndex(index, root uint64, extensible bool) error {
	if root == 0 {
		return errors.New("choice without root alternatives")
	}
	if extensible {
		extended := index >= root
		if err := e.EncodeBoolean(extended); err != nil {
			return err
		}
		if extended {
			return e.EncodeNormallySmallNonNegativeWholeNumber(index - root)
		}
	}
	if index >= root {
		return errors.Wrapf(ErrUnknownChoice, "index %d of %d", index, root)
	}
	return e.EncodeConstrainedWholeNumber(0, int64(root-1), int64(index))
}

// DecodeChoiceIndex reads the index written by EncodeChoiceIndex and reports
// whether it names an extension alternative.
func (d *Decoder) DecodeChoiceIndex(root uint64, extensible bool) (uint64, bool, error) {
	if root == 0 {
		return 0, false, errors.New("choice without root alternatives")
	}
	if extensible {
		extended, err := d.DecodeBoolean()
		if err != nil {
			return 0, false, err
		}
		if extended {
			index, err := d.DecodeNormallySmallNonNegativeWholeNumber()
			if err != nil {
				return 0, false, err
			}
			return root + index, true, nil
		}
	}
	offset, err := d.constrainedWholeNumber(0, int64(root-1))
	if err != nil {
		return 0, false, err
	}
	if offset >= root {
		return 0, false, errors.Wrapf(ErrUnknownChoice, "index %d of %d", offset, root)
	}
	return offset, false, nil
}
