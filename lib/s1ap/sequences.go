package s1ap

import (
	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/per"
)

// TAI ::= SEQUENCE { pLMNidentity, tAC, iE-Extensions OPTIONAL, ... }
type TAI struct {
	PLMNIdentity PLMNIdentity
	TAC          TAC
	IEExtensions container.Extensions
}

func (t *TAI) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, t.IEExtensions); err != nil {
		return err
	}
	if err := t.PLMNIdentity.Encode(e); err != nil {
		return err
	}
	if err := t.TAC.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, t.IEExtensions)
}

func (t *TAI) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := t.PLMNIdentity.Decode(d); err != nil {
		return err
	}
	if err := t.TAC.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &t.IEExtensions, optionals[0], extended)
}

// EUTRAN-CGI ::= SEQUENCE { pLMNidentity, cell-ID, iE-Extensions OPTIONAL, ... }
type EUTRANCGI struct {
	PLMNIdentity PLMNIdentity
	CellID       CellIdentity
	IEExtensions container.Extensions
}

func (c *EUTRANCGI) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, c.IEExtensions); err != nil {
		return err
	}
	if err := c.PLMNIdentity.Encode(e); err != nil {
		return err
	}
	if err := c.CellID.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, c.IEExtensions)
}

func (c *EUTRANCGI) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := c.PLMNIdentity.Decode(d); err != nil {
		return err
	}
	if err := c.CellID.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &c.IEExtensions, optionals[0], extended)
}

// Global-ENB-ID ::= SEQUENCE { pLMNidentity, eNB-ID, iE-Extensions OPTIONAL, ... }
type GlobalENBID struct {
	PLMNIdentity PLMNIdentity
	ENBID        ENBID
	IEExtensions container.Extensions
}

func (g *GlobalENBID) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, g.IEExtensions); err != nil {
		return err
	}
	if err := g.PLMNIdentity.Encode(e); err != nil {
		return err
	}
	if err := g.ENBID.Encode(e); err != nil {
		return errors.Wrap(err, "eNB-ID")
	}
	return encodeTail(e, g.IEExtensions)
}

func (g *GlobalENBID) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := g.PLMNIdentity.Decode(d); err != nil {
		return err
	}
	if err := g.ENBID.Decode(d); err != nil {
		return errors.Wrap(err, "eNB-ID")
	}
	return decodeTail(d, &g.IEExtensions, optionals[0], extended)
}

// SupportedTAs-Item ::= SEQUENCE { tAC, broadcastPLMNs, iE-Extensions OPTIONAL, ... }
type SupportedTAsItem struct {
	TAC            TAC
	BroadcastPLMNs []PLMNIdentity
	IEExtensions   container.Extensions
}

func (s *SupportedTAsItem) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, s.IEExtensions); err != nil {
		return err
	}
	if err := s.TAC.Encode(e); err != nil {
		return err
	}
	err := per.EncodeSequenceOf(e, s.BroadcastPLMNs, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_BPLMNS), false)
	if err != nil {
		return errors.Wrap(err, "broadcastPLMNs")
	}
	return encodeTail(e, s.IEExtensions)
}

func (s *SupportedTAsItem) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := s.TAC.Decode(d); err != nil {
		return err
	}
	s.BroadcastPLMNs, err = per.DecodeSequenceOf[PLMNIdentity](d, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_BPLMNS), false)
	if err != nil {
		return errors.Wrap(err, "broadcastPLMNs")
	}
	return decodeTail(d, &s.IEExtensions, optionals[0], extended)
}

// SupportedTAs ::= SEQUENCE (SIZE(1..maxnoofTACs)) OF SupportedTAs-Item
type SupportedTAs []SupportedTAsItem

func (s SupportedTAs) Encode(e *per.Encoder) error {
	return per.EncodeSequenceOf(e, []SupportedTAsItem(s), per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_TACS), false)
}

func (s *SupportedTAs) Decode(d *per.Decoder) (err error) {
	*s, err = per.DecodeSequenceOf[SupportedTAsItem](d, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_TACS), false)
	return
}

// ServedGUMMEIsItem ::= SEQUENCE { servedPLMNs, servedGroupIDs, servedMMECs,
// iE-Extensions OPTIONAL, ... }
type ServedGUMMEIsItem struct {
	ServedPLMNs    []PLMNIdentity
	ServedGroupIDs []MMEGroupID
	ServedMMECs    []MMECode
	IEExtensions   container.Extensions
}

func (s *ServedGUMMEIsItem) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, s.IEExtensions); err != nil {
		return err
	}
	err := per.EncodeSequenceOf(e, s.ServedPLMNs, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_PLMNS_PER_MME), false)
	if err != nil {
		return errors.Wrap(err, "servedPLMNs")
	}
	err = per.EncodeSequenceOf(e, s.ServedGroupIDs, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_GROUP_IDS), false)
	if err != nil {
		return errors.Wrap(err, "servedGroupIDs")
	}
	err = per.EncodeSequenceOf(e, s.ServedMMECs, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_MMECS), false)
	if err != nil {
		return errors.Wrap(err, "servedMMECs")
	}
	return encodeTail(e, s.IEExtensions)
}

func (s *ServedGUMMEIsItem) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	s.ServedPLMNs, err = per.DecodeSequenceOf[PLMNIdentity](d, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_PLMNS_PER_MME), false)
	if err != nil {
		return errors.Wrap(err, "servedPLMNs")
	}
	s.ServedGroupIDs, err = per.DecodeSequenceOf[MMEGroupID](d, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_GROUP_IDS), false)
	if err != nil {
		return errors.Wrap(err, "servedGroupIDs")
	}
	s.ServedMMECs, err = per.DecodeSequenceOf[MMECode](d, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_MMECS), false)
	if err != nil {
		return errors.Wrap(err, "servedMMECs")
	}
	return decodeTail(d, &s.IEExtensions, optionals[0], extended)
}

// ServedGUMMEIs ::= SEQUENCE (SIZE (1..maxnoofRATs)) OF ServedGUMMEIsItem
type ServedGUMMEIs []ServedGUMMEIsItem

func (s ServedGUMMEIs) Encode(e *per.Encoder) error {
	return per.EncodeSequenceOf(e, []ServedGUMMEIsItem(s), per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_RATS), false)
}

func (s *ServedGUMMEIs) Decode(d *per.Decoder) (err error) {
	*s, err = per.DecodeSequenceOf[ServedGUMMEIsItem](d, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_RATS), false)
	return
}

// UEAggregateMaximumBitrate ::= SEQUENCE { uEaggregateMaximumBitRateDL,
// uEaggregateMaximumBitRateUL, iE-Extensions OPTIONAL, ... }
type UEAggregateMaximumBitrate struct {
	DL           BitRate
	UL           BitRate
	IEExtensions container.Extensions
}

func (b *UEAggregateMaximumBitrate) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, b.IEExtensions); err != nil {
		return err
	}
	if err := b.DL.Encode(e); err != nil {
		return err
	}
	if err := b.UL.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, b.IEExtensions)
}

func (b *UEAggregateMaximumBitrate) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := b.DL.Decode(d); err != nil {
		return err
	}
	if err := b.UL.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &b.IEExtensions, optionals[0], extended)
}

// UESecurityCapabilities ::= SEQUENCE { encryptionAlgorithms,
// integrityProtectionAlgorithms, iE-Extensions OPTIONAL, ... }
type UESecurityCapabilities struct {
	EncryptionAlgorithms          EncryptionAlgorithms
	IntegrityProtectionAlgorithms IntegrityProtectionAlgorithms
	IEExtensions                  container.Extensions
}

func (c *UESecurityCapabilities) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, c.IEExtensions); err != nil {
		return err
	}
	if err := c.EncryptionAlgorithms.Encode(e); err != nil {
		return err
	}
	if err := c.IntegrityProtectionAlgorithms.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, c.IEExtensions)
}

func (c *UESecurityCapabilities) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := c.EncryptionAlgorithms.Decode(d); err != nil {
		return err
	}
	if err := c.IntegrityProtectionAlgorithms.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &c.IEExtensions, optionals[0], extended)
}

// S-TMSI ::= SEQUENCE { mMEC, m-TMSI, iE-Extensions OPTIONAL, ... }
type STMSI struct {
	MMEC         MMECode
	MTMSI        MTMSI
	IEExtensions container.Extensions
}

func (s *STMSI) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, s.IEExtensions); err != nil {
		return err
	}
	if err := s.MMEC.Encode(e); err != nil {
		return err
	}
	if err := s.MTMSI.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, s.IEExtensions)
}

func (s *STMSI) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := s.MMEC.Decode(d); err != nil {
		return err
	}
	if err := s.MTMSI.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &s.IEExtensions, optionals[0], extended)
}

// UE-S1AP-ID-pair ::= SEQUENCE { mME-UE-S1AP-ID, eNB-UE-S1AP-ID,
// iE-Extensions OPTIONAL, ... }
type UES1APIDPair struct {
	MMEUES1APID  MMEUES1APID
	ENBUES1APID  ENBUES1APID
	IEExtensions container.Extensions
}

func (p *UES1APIDPair) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, p.IEExtensions); err != nil {
		return err
	}
	if err := p.MMEUES1APID.Encode(e); err != nil {
		return err
	}
	if err := p.ENBUES1APID.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, p.IEExtensions)
}

func (p *UES1APIDPair) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := p.MMEUES1APID.Decode(d); err != nil {
		return err
	}
	if err := p.ENBUES1APID.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &p.IEExtensions, optionals[0], extended)
}

// TargeteNB-ID ::= SEQUENCE { global-ENB-ID, selected-TAI, iE-Extensions OPTIONAL, ... }
type TargetENBID struct {
	GlobalENBID  GlobalENBID
	SelectedTAI  TAI
	IEExtensions container.Extensions
}

func (t *TargetENBID) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, t.IEExtensions); err != nil {
		return err
	}
	if err := t.GlobalENBID.Encode(e); err != nil {
		return err
	}
	if err := t.SelectedTAI.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, t.IEExtensions)
}

func (t *TargetENBID) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := t.GlobalENBID.Decode(d); err != nil {
		return err
	}
	if err := t.SelectedTAI.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &t.IEExtensions, optionals[0], extended)
}

// LAI ::= SEQUENCE { pLMNidentity, lAC, iE-Extensions OPTIONAL, ... }
type LAI struct {
	PLMNIdentity PLMNIdentity
	LAC          LAC
	IEExtensions container.Extensions
}

func (l *LAI) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, l.IEExtensions); err != nil {
		return err
	}
	if err := l.PLMNIdentity.Encode(e); err != nil {
		return err
	}
	if err := l.LAC.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, l.IEExtensions)
}

func (l *LAI) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := l.PLMNIdentity.Decode(d); err != nil {
		return err
	}
	if err := l.LAC.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &l.IEExtensions, optionals[0], extended)
}

// TargetRNC-ID ::= SEQUENCE { lAI, rAC OPTIONAL, rNC-ID INTEGER (0..4095),
// extendedRNC-ID INTEGER (4096..65535) OPTIONAL, iE-Extensions OPTIONAL, ... }
type TargetRNCID struct {
	LAI           LAI
	RAC           *RAC
	RNCID         uint16
	ExtendedRNCID *uint16
	IEExtensions  container.Extensions
}

func (t *TargetRNCID) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, t.IEExtensions, t.RAC != nil, t.ExtendedRNCID != nil); err != nil {
		return err
	}
	if err := t.LAI.Encode(e); err != nil {
		return err
	}
	if t.RAC != nil {
		if err := t.RAC.Encode(e); err != nil {
			return err
		}
	}
	if err := e.EncodeConstrainedWholeNumber(0, RNC_ID_MAX, int64(t.RNCID)); err != nil {
		return errors.Wrap(err, "rNC-ID")
	}
	if t.ExtendedRNCID != nil {
		err := e.EncodeConstrainedWholeNumber(EXTENDED_RNC_ID_MIN, EXTENDED_RNC_ID_MAX, int64(*t.ExtendedRNCID))
		if err != nil {
			return errors.Wrap(err, "extendedRNC-ID")
		}
	}
	return encodeTail(e, t.IEExtensions)
}

func (t *TargetRNCID) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 2)
	if err != nil {
		return err
	}
	if err := t.LAI.Decode(d); err != nil {
		return err
	}
	if optionals[0] {
		t.RAC = new(RAC)
		if err := t.RAC.Decode(d); err != nil {
			return err
		}
	}
	id, err := d.DecodeConstrainedWholeNumber(0, RNC_ID_MAX)
	if err != nil {
		return errors.Wrap(err, "rNC-ID")
	}
	t.RNCID = uint16(id)
	if optionals[1] {
		id, err := d.DecodeConstrainedWholeNumber(EXTENDED_RNC_ID_MIN, EXTENDED_RNC_ID_MAX)
		if err != nil {
			return errors.Wrap(err, "extendedRNC-ID")
		}
		extendedID := uint16(id)
		t.ExtendedRNCID = &extendedID
	}
	return decodeTail(d, &t.IEExtensions, optionals[2], extended)
}

// CGI ::= SEQUENCE { pLMNidentity, lAC, cI, rAC OPTIONAL, iE-Extensions OPTIONAL, ... }
type CGI struct {
	PLMNIdentity PLMNIdentity
	LAC          LAC
	CI           CI
	RAC          *RAC
	IEExtensions container.Extensions
}

func (c *CGI) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, c.IEExtensions, c.RAC != nil); err != nil {
		return err
	}
	if err := c.PLMNIdentity.Encode(e); err != nil {
		return err
	}
	if err := c.LAC.Encode(e); err != nil {
		return err
	}
	if err := c.CI.Encode(e); err != nil {
		return err
	}
	if c.RAC != nil {
		if err := c.RAC.Encode(e); err != nil {
			return err
		}
	}
	return encodeTail(e, c.IEExtensions)
}

func (c *CGI) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 1)
	if err != nil {
		return err
	}
	if err := c.PLMNIdentity.Decode(d); err != nil {
		return err
	}
	if err := c.LAC.Decode(d); err != nil {
		return err
	}
	if err := c.CI.Decode(d); err != nil {
		return err
	}
	if optionals[0] {
		c.RAC = new(RAC)
		if err := c.RAC.Decode(d); err != nil {
			return err
		}
	}
	return decodeTail(d, &c.IEExtensions, optionals[1], extended)
}
