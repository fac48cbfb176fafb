package s1ap

import (
	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/per"
)

// AllocationAndRetentionPriority ::= SEQUENCE { priorityLevel,
// pre-emptionCapability, pre-emptionVulnerability, iE-Extensions OPTIONAL, ... }
type AllocationAndRetentionPriority struct {
	PriorityLevel           PriorityLevel
	PreEmptionCapability    PreEmptionCapability
	PreEmptionVulnerability PreEmptionVulnerability
	IEExtensions            container.Extensions
}

func (p *AllocationAndRetentionPriority) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, p.IEExtensions); err != nil {
		return err
	}
	if err := p.PriorityLevel.Encode(e); err != nil {
		return err
	}
	if err := p.PreEmptionCapability.Encode(e); err != nil {
		return err
	}
	if err := p.PreEmptionVulnerability.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, p.IEExtensions)
}

func (p *AllocationAndRetentionPriority) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := p.PriorityLevel.Decode(d); err != nil {
		return err
	}
	if err := p.PreEmptionCapability.Decode(d); err != nil {
		return err
	}
	if err := p.PreEmptionVulnerability.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &p.IEExtensions, optionals[0], extended)
}

// GBR-QosInformation ::= SEQUENCE { e-RAB-MaximumBitrateDL,
// e-RAB-MaximumBitrateUL, e-RAB-GuaranteedBitrateDL,
// e-RAB-GuaranteedBitrateUL, iE-Extensions OPTIONAL, ... }
type GBRQosInformation struct {
	MaximumBitrateDL    BitRate
	MaximumBitrateUL    BitRate
	GuaranteedBitrateDL BitRate
	GuaranteedBitrateUL BitRate
	IEExtensions        container.Extensions
}

func (g *GBRQosInformation) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, g.IEExtensions); err != nil {
		return err
	}
	for _, rate := range []BitRate{g.MaximumBitrateDL, g.MaximumBitrateUL, g.GuaranteedBitrateDL, g.GuaranteedBitrateUL} {
		if err := rate.Encode(e); err != nil {
			return err
		}
	}
	return encodeTail(e, g.IEExtensions)
}

func (g *GBRQosInformation) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	for _, rate := range []*BitRate{&g.MaximumBitrateDL, &g.MaximumBitrateUL, &g.GuaranteedBitrateDL, &g.GuaranteedBitrateUL} {
		if err := rate.Decode(d); err != nil {
			return err
		}
	}
	return decodeTail(d, &g.IEExtensions, optionals[0], extended)
}

// E-RABLevelQoSParameters ::= SEQUENCE { qCI, allocationRetentionPriority,
// gbrQosInformation OPTIONAL, iE-Extensions OPTIONAL, ... }
type ERABLevelQoSParameters struct {
	QCI                         QCI
	AllocationRetentionPriority AllocationAndRetentionPriority
	GBRQosInformation           *GBRQosInformation
	IEExtensions                container.Extensions
}

func (q *ERABLevelQoSParameters) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, q.IEExtensions, q.GBRQosInformation != nil); err != nil {
		return err
	}
	if err := q.QCI.Encode(e); err != nil {
		return err
	}
	if err := q.AllocationRetentionPriority.Encode(e); err != nil {
		return errors.Wrap(err, "allocationRetentionPriority")
	}
	if q.GBRQosInformation != nil {
		if err := q.GBRQosInformation.Encode(e); err != nil {
			return errors.Wrap(err, "gbrQosInformation")
		}
	}
	return encodeTail(e, q.IEExtensions)
}

func (q *ERABLevelQoSParameters) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 1)
	if err != nil {
		return err
	}
	if err := q.QCI.Decode(d); err != nil {
		return err
	}
	if err := q.AllocationRetentionPriority.Decode(d); err != nil {
		return errors.Wrap(err, "allocationRetentionPriority")
	}
	if optionals[0] {
		q.GBRQosInformation = new(GBRQosInformation)
		if err := q.GBRQosInformation.Decode(d); err != nil {
			return errors.Wrap(err, "gbrQosInformation")
		}
	}
	return decodeTail(d, &q.IEExtensions, optionals[1], extended)
}

// E-RABToBeSetupItemCtxtSUReq ::= SEQUENCE { e-RAB-ID, e-RABlevelQoSParameters,
// transportLayerAddress, gTP-TEID, nAS-PDU OPTIONAL, iE-Extensions OPTIONAL, ... }
type ERABToBeSetupItemCtxtSUReq struct {
	ERABID                 ERABID
	ERABLevelQoSParameters ERABLevelQoSParameters
	TransportLayerAddress  TransportLayerAddress
	GTPTEID                GTPTEID
	NASPDU                 NASPDU
	IEExtensions           container.Extensions
}

func (r *ERABToBeSetupItemCtxtSUReq) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, r.IEExtensions, r.NASPDU != nil); err != nil {
		return err
	}
	if err := r.ERABID.Encode(e); err != nil {
		return err
	}
	if err := r.ERABLevelQoSParameters.Encode(e); err != nil {
		return errors.Wrap(err, "e-RABlevelQoSParameters")
	}
	if err := r.TransportLayerAddress.Encode(e); err != nil {
		return errors.Wrap(err, "transportLayerAddress")
	}
	if err := r.GTPTEID.Encode(e); err != nil {
		return err
	}
	if r.NASPDU != nil {
		if err := r.NASPDU.Encode(e); err != nil {
			return errors.Wrap(err, "nAS-PDU")
		}
	}
	return encodeTail(e, r.IEExtensions)
}

func (r *ERABToBeSetupItemCtxtSUReq) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 1)
	if err != nil {
		return err
	}
	if err := r.ERABID.Decode(d); err != nil {
		return err
	}
	if err := r.ERABLevelQoSParameters.Decode(d); err != nil {
		return errors.Wrap(err, "e-RABlevelQoSParameters")
	}
	if err := r.TransportLayerAddress.Decode(d); err != nil {
		return errors.Wrap(err, "transportLayerAddress")
	}
	if err := r.GTPTEID.Decode(d); err != nil {
		return err
	}
	if optionals[0] {
		if err := r.NASPDU.Decode(d); err != nil {
			return errors.Wrap(err, "nAS-PDU")
		}
		if r.NASPDU == nil {
			r.NASPDU = NASPDU{}
		}
	}
	return decodeTail(d, &r.IEExtensions, optionals[1], extended)
}

// E-RABSetupItemCtxtSURes ::= SEQUENCE { e-RAB-ID, transportLayerAddress,
// gTP-TEID, iE-Extensions OPTIONAL, ... }
type ERABSetupItemCtxtSURes struct {
	ERABID                ERABID
	TransportLayerAddress TransportLayerAddress
	GTPTEID               GTPTEID
	IEExtensions          container.Extensions
}

func (r *ERABSetupItemCtxtSURes) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, r.IEExtensions); err != nil {
		return err
	}
	if err := r.ERABID.Encode(e); err != nil {
		return err
	}
	if err := r.TransportLayerAddress.Encode(e); err != nil {
		return errors.Wrap(err, "transportLayerAddress")
	}
	if err := r.GTPTEID.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, r.IEExtensions)
}

func (r *ERABSetupItemCtxtSURes) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := r.ERABID.Decode(d); err != nil {
		return err
	}
	if err := r.TransportLayerAddress.Decode(d); err != nil {
		return errors.Wrap(err, "transportLayerAddress")
	}
	if err := r.GTPTEID.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &r.IEExtensions, optionals[0], extended)
}

// E-RABItem ::= SEQUENCE { e-RAB-ID, cause, iE-Extensions OPTIONAL, ... }
type ERABItem struct {
	ERABID       ERABID
	Cause        Cause
	IEExtensions container.Extensions
}

func (r *ERABItem) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, r.IEExtensions); err != nil {
		return err
	}
	if err := r.ERABID.Encode(e); err != nil {
		return err
	}
	if err := r.Cause.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, r.IEExtensions)
}

func (r *ERABItem) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := r.ERABID.Decode(d); err != nil {
		return err
	}
	if err := r.Cause.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &r.IEExtensions, optionals[0], extended)
}

var (
	erabToBeSetupItemCtxtSUReq = container.Descriptor{
		ID: ID_E_RAB_TO_BE_SETUP_ITEM_CTXT_SU_REQ, Name: "E-RABToBeSetupItemCtxtSUReq",
		Criticality: container.Reject, Presence: container.Mandatory,
	}
	erabSetupItemCtxtSURes = container.Descriptor{
		ID: ID_E_RAB_SETUP_ITEM_CTXT_SU_RES, Name: "E-RABSetupItemCtxtSURes",
		Criticality: container.Ignore, Presence: container.Mandatory,
	}
	erabItem = container.Descriptor{
		ID: ID_E_RAB_ITEM, Name: "E-RABItem",
		Criticality: container.Ignore, Presence: container.Mandatory,
	}
)

// E-RABToBeSetupListCtxtSUReq ::= E-RAB-IE-ContainerList { {E-RABToBeSetupItemCtxtSUReqIEs} }
type ERABToBeSetupListCtxtSUReq []ERABToBeSetupItemCtxtSUReq

func (l ERABToBeSetupListCtxtSUReq) Encode(e *per.Encoder) error {
	return container.EncodeList(e, erabToBeSetupItemCtxtSUReq, []ERABToBeSetupItemCtxtSUReq(l), 1, MAX_NOOF_E_RABS)
}

func (l *ERABToBeSetupListCtxtSUReq) Decode(d *per.Decoder) (err error) {
	*l, err = container.DecodeList[ERABToBeSetupItemCtxtSUReq](d, erabToBeSetupItemCtxtSUReq, 1, MAX_NOOF_E_RABS, nil)
	return
}

// E-RABSetupListCtxtSURes ::= E-RAB-IE-ContainerList { {E-RABSetupItemCtxtSUResIEs} }
type ERABSetupListCtxtSURes []ERABSetupItemCtxtSURes

func (l ERABSetupListCtxtSURes) Encode(e *per.Encoder) error {
	return container.EncodeList(e, erabSetupItemCtxtSURes, []ERABSetupItemCtxtSURes(l), 1, MAX_NOOF_E_RABS)
}

func (l *ERABSetupListCtxtSURes) Decode(d *per.Decoder) (err error) {
	*l, err = container.DecodeList[ERABSetupItemCtxtSURes](d, erabSetupItemCtxtSURes, 1, MAX_NOOF_E_RABS, nil)
	return
}

// E-RABList ::= E-RAB-IE-ContainerList { {E-RABItemIEs} }
type ERABList []ERABItem

func (l ERABList) Encode(e *per.Encoder) error {
	return container.EncodeList(e, erabItem, []ERABItem(l), 1, MAX_NOOF_E_RABS)
}

func (l *ERABList) Decode(d *per.Decoder) (err error) {
	*l, err = container.DecodeList[ERABItem](d, erabItem, 1, MAX_NOOF_E_RABS, nil)
	return
}
