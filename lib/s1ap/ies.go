package s1ap

import (
	"encoding/asn1"
	"fmt"
	"net"
	"strings"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/per"
)

// ProcedureCode ::= INTEGER (0..255)
type ProcedureCode uint8

func (c ProcedureCode) Encode(e *per.Encoder) error {
	return e.EncodeConstrainedWholeNumber(0, MAX_PROCEDURE_CODE, int64(c))
}

func (c *ProcedureCode) Decode(d *per.Decoder) error {
	value, err := d.DecodeConstrainedWholeNumber(0, MAX_PROCEDURE_CODE)
	*c = ProcedureCode(value)
	return err
}

// MME-UE-S1AP-ID ::= INTEGER (0..4294967295)
type MMEUES1APID uint32

func (id MMEUES1APID) Encode(e *per.Encoder) error {
	return e.EncodeConstrainedWholeNumber(0, MAX_MME_UE_S1AP_ID, int64(id))
}

func (id *MMEUES1APID) Decode(d *per.Decoder) error {
	value, err := d.DecodeConstrainedWholeNumber(0, MAX_MME_UE_S1AP_ID)
	*id = MMEUES1APID(value)
	return err
}

// ENB-UE-S1AP-ID ::= INTEGER (0..16777215)
type ENBUES1APID uint32

func (id ENBUES1APID) Encode(e *per.Encoder) error {
	return e.EncodeConstrainedWholeNumber(0, MAX_ENB_UE_S1AP_ID, int64(id))
}

func (id *ENBUES1APID) Decode(d *per.Decoder) error {
	value, err := d.DecodeConstrainedWholeNumber(0, MAX_ENB_UE_S1AP_ID)
	*id = ENBUES1APID(value)
	return err
}

// RelativeMMECapacity ::= INTEGER (0..255)
type RelativeMMECapacity uint8

func (c RelativeMMECapacity) Encode(e *per.Encoder) error {
	return e.EncodeConstrainedWholeNumber(0, MAX_RELATIVE_MME_CAPACITY, int64(c))
}

func (c *RelativeMMECapacity) Decode(d *per.Decoder) error {
	value, err := d.DecodeConstrainedWholeNumber(0, MAX_RELATIVE_MME_CAPACITY)
	*c = RelativeMMECapacity(value)
	return err
}

// SubscriberProfileIDforRFP ::= INTEGER (1..256)
type SubscriberProfileIDforRFP uint16

func (id SubscriberProfileIDforRFP) Encode(e *per.Encoder) error {
	return e.EncodeConstrainedWholeNumber(1, MAX_SUBSCRIBER_PROFILE_ID, int64(id))
}

func (id *SubscriberProfileIDforRFP) Decode(d *per.Decoder) error {
	value, err := d.DecodeConstrainedWholeNumber(1, MAX_SUBSCRIBER_PROFILE_ID)
	*id = SubscriberProfileIDforRFP(value)
	return err
}

// BitRate ::= INTEGER (0..10000000000)
type BitRate uint64

func (r BitRate) Encode(e *per.Encoder) error {
	return e.EncodeConstrainedWholeNumber(0, MAX_BIT_RATE, int64(r))
}

func (r *BitRate) Decode(d *per.Decoder) error {
	value, err := d.DecodeConstrainedWholeNumber(0, MAX_BIT_RATE)
	*r = BitRate(value)
	return err
}

// E-RAB-ID ::= INTEGER (0..15, ...)
type ERABID uint8

func (id ERABID) Encode(e *per.Encoder) error {
	return e.EncodeInteger(int64(id), per.Bound[int64](0), per.Bound[int64](MAX_E_RAB_ID), true)
}

func (id *ERABID) Decode(d *per.Decoder) error {
	value, err := d.DecodeInteger(per.Bound[int64](0), per.Bound[int64](MAX_E_RAB_ID), true)
	if err != nil {
		return err
	}
	if value < 0 || value > 255 {
		return errors.Wrapf(per.ErrOutOfRange, "E-RAB-ID %d", value)
	}
	*id = ERABID(value)
	return nil
}

// QCI ::= INTEGER (0..255)
type QCI uint8

func (q QCI) Encode(e *per.Encoder) error {
	return e.EncodeConstrainedWholeNumber(0, MAX_QCI, int64(q))
}

func (q *QCI) Decode(d *per.Decoder) error {
	value, err := d.DecodeConstrainedWholeNumber(0, MAX_QCI)
	*q = QCI(value)
	return err
}

// PriorityLevel ::= INTEGER { spare(0), highest(1), lowest(14), no-priority(15) } (0..15)
type PriorityLevel uint8

func (p PriorityLevel) Encode(e *per.Encoder) error {
	return e.EncodeConstrainedWholeNumber(0, MAX_PRIORITY_LEVEL, int64(p))
}

func (p *PriorityLevel) Decode(d *per.Decoder) error {
	value, err := d.DecodeConstrainedWholeNumber(0, MAX_PRIORITY_LEVEL)
	*p = PriorityLevel(value)
	return err
}

// PLMNidentity ::= TBCD-STRING (SIZE (3))
type PLMNIdentity [3]byte

// NewPLMNIdentity packs a MCC of three digits and a MNC of two or three
// digits.
func NewPLMNIdentity(mcc, mnc string) (PLMNIdentity, error) {
	var plmn PLMNIdentity
	if len(mcc) != 3 || (len(mnc) != 2 && len(mnc) != 3) {
		return plmn, errors.Errorf("invalid PLMN %s-%s", mcc, mnc)
	}
	digits := make([]byte, 0, 6)
	for _, c := range mcc + mnc {
		if c < '0' || c > '9' {
			return plmn, errors.Errorf("invalid PLMN digit %q", c)
		}
		digits = append(digits, byte(c-'0'))
	}
	mnc3 := byte(0x0F)
	if len(mnc) == 3 {
		mnc3 = digits[5]
	}
	plmn[0] = digits[1]<<4 | digits[0]
	plmn[1] = mnc3<<4 | digits[2]
	plmn[2] = digits[4]<<4 | digits[3]
	return plmn, nil
}

// MCC returns the mobile country code digits.
func (p PLMNIdentity) MCC() string {
	return fmt.Sprintf("%d%d%d", p[0]&0x0F, p[0]>>4, p[1]&0x0F)
}

// MNC returns the mobile network code digits.
func (p PLMNIdentity) MNC() string {
	if p[1]>>4 == 0x0F {
		return fmt.Sprintf("%d%d", p[2]&0x0F, p[2]>>4)
	}
	return fmt.Sprintf("%d%d%d", p[2]&0x0F, p[2]>>4, p[1]>>4)
}

func (p PLMNIdentity) String() string {
	return p.MCC() + "-" + p.MNC()
}

func (p PLMNIdentity) Encode(e *per.Encoder) error {
	return encodeOctets(e, p[:])
}

func (p *PLMNIdentity) Decode(d *per.Decoder) error {
	return decodeOctets(d, p[:])
}

// TAC ::= OCTET STRING (SIZE (2))
type TAC [2]byte

func (t TAC) Encode(e *per.Encoder) error {
	return encodeOctets(e, t[:])
}

func (t *TAC) Decode(d *per.Decoder) error {
	return decodeOctets(d, t[:])
}

// MME-Group-ID ::= OCTET STRING (SIZE (2))
type MMEGroupID [2]byte

func (g MMEGroupID) Encode(e *per.Encoder) error {
	return encodeOctets(e, g[:])
}

func (g *MMEGroupID) Decode(d *per.Decoder) error {
	return decodeOctets(d, g[:])
}

// MME-Code ::= OCTET STRING (SIZE (1))
type MMECode byte

func (c MMECode) Encode(e *per.Encoder) error {
	return encodeOctets(e, []byte{byte(c)})
}

func (c *MMECode) Decode(d *per.Decoder) error {
	var value [1]byte
	if err := decodeOctets(d, value[:]); err != nil {
		return err
	}
	*c = MMECode(value[0])
	return nil
}

// M-TMSI ::= OCTET STRING (SIZE (4))
type MTMSI [4]byte

func (t MTMSI) Encode(e *per.Encoder) error {
	return encodeOctets(e, t[:])
}

func (t *MTMSI) Decode(d *per.Decoder) error {
	return decodeOctets(d, t[:])
}

// GTP-TEID ::= OCTET STRING (SIZE (4))
type GTPTEID [4]byte

func (t GTPTEID) Encode(e *per.Encoder) error {
	return encodeOctets(e, t[:])
}

func (t *GTPTEID) Decode(d *per.Decoder) error {
	return decodeOctets(d, t[:])
}

// LAC ::= OCTET STRING (SIZE (2))
type LAC [2]byte

func (l LAC) Encode(e *per.Encoder) error {
	return encodeOctets(e, l[:])
}

func (l *LAC) Decode(d *per.Decoder) error {
	return decodeOctets(d, l[:])
}

// CI ::= OCTET STRING (SIZE (2))
type CI [2]byte

func (c CI) Encode(e *per.Encoder) error {
	return encodeOctets(e, c[:])
}

func (c *CI) Decode(d *per.Decoder) error {
	return decodeOctets(d, c[:])
}

// RAC ::= OCTET STRING (SIZE (1))
type RAC byte

func (r RAC) Encode(e *per.Encoder) error {
	return encodeOctets(e, []byte{byte(r)})
}

func (r *RAC) Decode(d *per.Decoder) error {
	var value [1]byte
	if err := decodeOctets(d, value[:]); err != nil {
		return err
	}
	*r = RAC(value[0])
	return nil
}

// NAS-PDU ::= OCTET STRING
type NASPDU []byte

func (p NASPDU) Encode(e *per.Encoder) error {
	return e.EncodeOctetString(p, nil, nil, false)
}

func (p *NASPDU) Decode(d *per.Decoder) error {
	value, err := d.DecodeOctetString(nil, nil, false)
	*p = value
	return err
}

// TransparentContainer is the OCTET STRING behind Source-ToTarget- and
// Target-ToSource-TransparentContainer. Its content is opaque to S1AP.
type TransparentContainer []byte

func (c TransparentContainer) Encode(e *per.Encoder) error {
	return e.EncodeOctetString(c, nil, nil, false)
}

func (c *TransparentContainer) Decode(d *per.Decoder) error {
	value, err := d.DecodeOctetString(nil, nil, false)
	*c = value
	return err
}

// ENBname ::= PrintableString (SIZE (1..150, ...))
type ENBName string

func (n ENBName) Encode(e *per.Encoder) error {
	return e.EncodePrintableString(string(n), per.Bound[uint64](1), per.Bound[uint64](MAX_NAME_LENGTH), true)
}

func (n *ENBName) Decode(d *per.Decoder) error {
	value, err := d.DecodePrintableString(per.Bound[uint64](1), per.Bound[uint64](MAX_NAME_LENGTH), true)
	*n = ENBName(value)
	return err
}

// MMEname ::= PrintableString (SIZE (1..150, ...))
type MMEName string

func (n MMEName) Encode(e *per.Encoder) error {
	return e.EncodePrintableString(string(n), per.Bound[uint64](1), per.Bound[uint64](MAX_NAME_LENGTH), true)
}

func (n *MMEName) Decode(d *per.Decoder) error {
	value, err := d.DecodePrintableString(per.Bound[uint64](1), per.Bound[uint64](MAX_NAME_LENGTH), true)
	*n = MMEName(value)
	return err
}

// TransportLayerAddress ::= BIT STRING (SIZE (1..160, ...))
type TransportLayerAddress asn1.BitString

// NewTransportLayerAddress returns the address of ip, four octets for IPv4
// and sixteen for IPv6.
func NewTransportLayerAddress(ip net.IP) TransportLayerAddress {
	if v4 := ip.To4(); v4 != nil {
		ip = v4
	}
	return TransportLayerAddress{Bytes: append([]byte(nil), ip...), BitLength: len(ip) * 8}
}

// IP returns the address as an IP, or nil when it is neither 32 nor 128 bits.
func (a TransportLayerAddress) IP() net.IP {
	switch a.BitLength {
	case net.IPv4len * 8, net.IPv6len * 8:
		return net.IP(append([]byte(nil), a.Bytes...))
	}
	return nil
}

func (a TransportLayerAddress) String() string {
	if ip := a.IP(); ip != nil {
		return ip.String()
	}
	return fmt.Sprintf("%x/%d", a.Bytes, a.BitLength)
}

func (a TransportLayerAddress) Encode(e *per.Encoder) error {
	bits := asn1.BitString(a)
	return e.EncodeBitString(&bits, per.Bound[uint64](1), per.Bound[uint64](MAX_TRANSPORT_ADDRESS_BITS), true)
}

func (a *TransportLayerAddress) Decode(d *per.Decoder) error {
	bits, err := d.DecodeBitString(per.Bound[uint64](1), per.Bound[uint64](MAX_TRANSPORT_ADDRESS_BITS), true)
	if err != nil {
		return err
	}
	*a = TransportLayerAddress(*bits)
	return nil
}

// SecurityKey ::= BIT STRING (SIZE (256))
type SecurityKey [SECURITY_KEY_BITS / 8]byte

func (k SecurityKey) Encode(e *per.Encoder) error {
	bits := asn1.BitString{Bytes: k[:], BitLength: SECURITY_KEY_BITS}
	return e.EncodeBitString(&bits, per.Bound[uint64](SECURITY_KEY_BITS), per.Bound[uint64](SECURITY_KEY_BITS), false)
}

func (k *SecurityKey) Decode(d *per.Decoder) error {
	bits, err := d.DecodeBitString(per.Bound[uint64](SECURITY_KEY_BITS), per.Bound[uint64](SECURITY_KEY_BITS), false)
	if err != nil {
		return err
	}
	copy(k[:], bits.Bytes)
	return nil
}

// EncryptionAlgorithms ::= BIT STRING (SIZE (16, ...)); bit 0 is the most
// significant bit of the value.
type EncryptionAlgorithms uint16

func (a EncryptionAlgorithms) Encode(e *per.Encoder) error {
	return encodeBits(e, uint64(a), ALGORITHM_BITS, true)
}

func (a *EncryptionAlgorithms) Decode(d *per.Decoder) error {
	value, err := decodeBits(d, ALGORITHM_BITS, true)
	*a = EncryptionAlgorithms(value)
	return err
}

// IntegrityProtectionAlgorithms ::= BIT STRING (SIZE (16, ...))
type IntegrityProtectionAlgorithms uint16

func (a IntegrityProtectionAlgorithms) Encode(e *per.Encoder) error {
	return encodeBits(e, uint64(a), ALGORITHM_BITS, true)
}

func (a *IntegrityProtectionAlgorithms) Decode(d *per.Decoder) error {
	value, err := decodeBits(d, ALGORITHM_BITS, true)
	*a = IntegrityProtectionAlgorithms(value)
	return err
}

// CellIdentity ::= BIT STRING (SIZE (28))
type CellIdentity uint32

func (c CellIdentity) Encode(e *per.Encoder) error {
	return encodeBits(e, uint64(c), CELL_IDENTITY_BITS, false)
}

func (c *CellIdentity) Decode(d *per.Decoder) error {
	value, err := decodeBits(d, CELL_IDENTITY_BITS, false)
	*c = CellIdentity(value)
	return err
}

// CSG-Id ::= BIT STRING (SIZE (27))
type CSGID uint32

func (c CSGID) Encode(e *per.Encoder) error {
	return encodeBits(e, uint64(c), CSG_ID_BITS, false)
}

func (c *CSGID) Decode(d *per.Decoder) error {
	value, err := decodeBits(d, CSG_ID_BITS, false)
	*c = CSGID(value)
	return err
}

// hexString renders octets the way the decode table prints them.
func hexString(data []byte) string {
	var builder strings.Builder
	for i, b := range data {
		if i > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprintf(&builder, "%02x", b)
	}
	return builder.String()
}

func (p NASPDU) String() string {
	return hexString(p)
}

func (c TransparentContainer) String() string {
	return hexString(c)
}
