package container

import (
	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/per"
)

// EncodeList writes items as a ProtocolIE-ContainerList of SIZE(lb..ub):
// every item travels in its own ProtocolIE-SingleContainer under the id and
// criticality of desc.
func EncodeList[T any, PT interface {
	*T
	per.Value
}](e *per.Encoder, desc Descriptor, items []T, lb, ub uint64) error {
	if _, _, err := e.EncodeLengthDeterminant(uint64(len(items)), &lb, &ub); err != nil {
		return errors.Wrap(err, desc.Name)
	}
	for i := range items {
		if err := EncodeField(e, desc.ID, desc.Criticality, PT(&items[i])); err != nil {
			return errors.Wrapf(err, "%s item %d", desc.Name, i)
		}
	}
	return nil
}

// DecodeList reads a ProtocolIE-ContainerList written by EncodeList. Items
// carrying another id are handled by their criticality; notify items are
// recorded in report, or in the decoder's sink when report is nil.
func DecodeList[T any, PT interface {
	*T
	per.Value
}](d *per.Decoder, desc Descriptor, lb, ub uint64, report *Report) ([]T, error) {
	count, _, err := d.DecodeLengthDeterminant(&lb, &ub)
	if err != nil {
		return nil, errors.Wrap(err, desc.Name)
	}

	if report == nil {
		report, _ = d.Sink().(*Report)
	}
	items := make([]T, 0, count)
	for i := range count {
		id, criticality, data, err := DecodeField(d)
		if err != nil {
			return nil, errors.Wrapf(err, "%s item %d", desc.Name, i)
		}
		if id != desc.ID {
			switch criticality {
			case Reject:
				report.add(id, criticality, NotUnderstood)
				return nil, errors.Wrapf(ErrRejectedIE, "id %d in %s", id, desc.Name)
			case Notify:
				report.add(id, criticality, NotUnderstood)
			}
			continue
		}

		var item T
		if err := PT(&item).Decode(d.Nested(data)); err != nil {
			return nil, errors.Wrapf(err, "%s item %d", desc.Name, i)
		}
		items = append(items, item)
	}
	return items, nil
}
