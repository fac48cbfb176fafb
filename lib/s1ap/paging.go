package s1ap

import (
	"strings"

	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/per"
)

// UEIdentityIndexValue ::= BIT STRING (SIZE (10))
type UEIdentityIndexValue uint16

func (v UEIdentityIndexValue) Encode(e *per.Encoder) error {
	return encodeBits(e, uint64(v), UE_IDENTITY_INDEX_BITS, false)
}

func (v *UEIdentityIndexValue) Decode(d *per.Decoder) error {
	value, err := decodeBits(d, UE_IDENTITY_INDEX_BITS, false)
	*v = UEIdentityIndexValue(value)
	return err
}

// IMSI ::= OCTET STRING (SIZE (3..8)), TBCD digits.
type IMSI []byte

func (i IMSI) Encode(e *per.Encoder) error {
	return e.EncodeOctetString(i, per.Bound[uint64](IMSI_MIN_LENGTH), per.Bound[uint64](IMSI_MAX_LENGTH), false)
}

func (i *IMSI) Decode(d *per.Decoder) error {
	value, err := d.DecodeOctetString(per.Bound[uint64](IMSI_MIN_LENGTH), per.Bound[uint64](IMSI_MAX_LENGTH), false)
	*i = IMSI(value)
	return err
}

// String returns the digits, low nibble first, stopping at the filler.
func (i IMSI) String() string {
	var builder strings.Builder
	for _, b := range i {
		for _, digit := range [2]byte{b & 0x0F, b >> 4} {
			if digit > 9 {
				return builder.String()
			}
			builder.WriteByte('0' + digit)
		}
	}
	return builder.String()
}

// UEPagingIDPresent names the live alternative of a UEPagingID.
type UEPagingIDPresent uint8

const (
	UEPagingIDPresentNothing UEPagingIDPresent = iota
	UEPagingIDPresentSTMSI
	UEPagingIDPresentIMSI
)

// UEPagingID ::= CHOICE { s-TMSI, iMSI, ... }
type UEPagingID struct {
	choice
}

func (id UEPagingID) Present() UEPagingIDPresent {
	return UEPagingIDPresent(id.present)
}

func (id *UEPagingID) SetSTMSI(tmsi STMSI) {
	id.set(uint8(UEPagingIDPresentSTMSI), &tmsi)
}

func (id *UEPagingID) SetIMSI(imsi IMSI) {
	id.set(uint8(UEPagingIDPresentIMSI), &imsi)
}

func (id UEPagingID) STMSI() (STMSI, bool) {
	return alternativeOf[STMSI](id.choice, uint8(UEPagingIDPresentSTMSI))
}

func (id UEPagingID) IMSI() (IMSI, bool) {
	return alternativeOf[IMSI](id.choice, uint8(UEPagingIDPresentIMSI))
}

func (id *UEPagingID) Encode(e *per.Encoder) error {
	return id.encode(e, "UEPagingID", 2, true)
}

func (id *UEPagingID) Decode(d *per.Decoder) error {
	return id.decode(d, "UEPagingID", 2, true,
		func() per.Value { return new(STMSI) },
		func() per.Value { return new(IMSI) })
}

// TAIItem ::= SEQUENCE { tAI, iE-Extensions OPTIONAL, ... }
type TAIItem struct {
	TAI          TAI
	IEExtensions container.Extensions
}

func (t *TAIItem) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, t.IEExtensions); err != nil {
		return err
	}
	if err := t.TAI.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, t.IEExtensions)
}

func (t *TAIItem) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := t.TAI.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &t.IEExtensions, optionals[0], extended)
}

var taiItem = container.Descriptor{
	ID: ID_TAI_ITEM, Name: "TAIItem",
	Criticality: container.Ignore, Presence: container.Mandatory,
}

// TAIList ::= SEQUENCE (SIZE(1..maxnoofTAIs)) OF ProtocolIE-SingleContainer {{TAIItemIEs}}
type TAIList []TAIItem

func (l TAIList) Encode(e *per.Encoder) error {
	return container.EncodeList(e, taiItem, []TAIItem(l), 1, MAX_NOOF_TAIS)
}

func (l *TAIList) Decode(d *per.Decoder) (err error) {
	*l, err = container.DecodeList[TAIItem](d, taiItem, 1, MAX_NOOF_TAIS, nil)
	return
}
