package s1ap

import (
	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/per"
)

// Message is implemented by every S1AP message. Messages are
// SEQUENCE { protocolIEs ProtocolIE-Container, ... }; their IEs are described
// by an object set and decoded through the container policy.
type Message interface {
	container.Container
	per.Value

	// Procedure returns the elementary procedure the message belongs to.
	Procedure() ProcedureCode

	// Kind returns the S1AP-PDU alternative carrying the message.
	Kind() PDUType
}

// optional appends the field when value is present.
func optional[T any, PT interface {
	*T
	per.Value
}](fields []container.Field, id uint16, value PT) []container.Field {
	if value == nil {
		return fields
	}
	return append(fields, container.Field{ID: id, Value: value})
}

func ie(id uint16, name string, criticality container.Criticality, presence container.Presence) container.Descriptor {
	return container.Descriptor{ID: id, Name: name, Criticality: criticality, Presence: presence}
}

var (
	handoverRequiredIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_HANDOVER_TYPE, "HandoverType", container.Reject, container.Mandatory),
		ie(ID_CAUSE, "Cause", container.Ignore, container.Mandatory),
		ie(ID_TARGET_ID, "TargetID", container.Reject, container.Mandatory),
		ie(ID_DIRECT_FORWARDING_PATH_AVAILABILITY, "Direct-Forwarding-Path-Availability", container.Ignore, container.Optional),
		ie(ID_SOURCE_TO_TARGET_TRANSPARENT_CONTAINER, "Source-ToTarget-TransparentContainer", container.Reject, container.Mandatory),
		ie(ID_CSG_ID, "CSG-Id", container.Reject, container.Optional),
	}

	handoverCommandIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_HANDOVER_TYPE, "HandoverType", container.Reject, container.Mandatory),
		ie(ID_TARGET_TO_SOURCE_TRANSPARENT_CONTAINER, "Target-ToSource-TransparentContainer", container.Reject, container.Mandatory),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
	}

	handoverPreparationFailureIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_CAUSE, "Cause", container.Ignore, container.Mandatory),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
	}

	handoverCancelIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_CAUSE, "Cause", container.Ignore, container.Mandatory),
	}

	handoverCancelAcknowledgeIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
	}

	initialContextSetupRequestIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_UE_AGGREGATE_MAXIMUM_BITRATE, "uEaggregateMaximumBitrate", container.Reject, container.Mandatory),
		ie(ID_E_RAB_TO_BE_SETUP_LIST_CTXT_SU_REQ, "E-RABToBeSetupListCtxtSUReq", container.Reject, container.Mandatory),
		ie(ID_UE_SECURITY_CAPABILITIES, "UESecurityCapabilities", container.Reject, container.Mandatory),
		ie(ID_SECURITY_KEY, "SecurityKey", container.Reject, container.Mandatory),
		ie(ID_SUBSCRIBER_PROFILE_ID_FOR_RFP, "SubscriberProfileIDforRFP", container.Ignore, container.Optional),
	}

	initialContextSetupResponseIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_E_RAB_SETUP_LIST_CTXT_SU_RES, "E-RABSetupListCtxtSURes", container.Ignore, container.Mandatory),
		ie(ID_E_RAB_FAILED_TO_SETUP_LIST_CTXT_SU_RES, "E-RABFailedToSetupListCtxtSURes", container.Ignore, container.Optional),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
	}

	initialContextSetupFailureIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_CAUSE, "Cause", container.Ignore, container.Mandatory),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
	}

	downlinkNASTransportIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_NAS_PDU, "NAS-PDU", container.Reject, container.Mandatory),
		ie(ID_SUBSCRIBER_PROFILE_ID_FOR_RFP, "SubscriberProfileIDforRFP", container.Ignore, container.Optional),
	}

	initialUEMessageIEs = container.ObjectSet{
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_NAS_PDU, "NAS-PDU", container.Reject, container.Mandatory),
		ie(ID_TAI, "TAI", container.Reject, container.Mandatory),
		ie(ID_EUTRAN_CGI, "EUTRAN-CGI", container.Ignore, container.Mandatory),
		ie(ID_RRC_ESTABLISHMENT_CAUSE, "RRC-Establishment-Cause", container.Ignore, container.Mandatory),
		ie(ID_S_TMSI, "S-TMSI", container.Reject, container.Optional),
		ie(ID_CSG_ID, "CSG-Id", container.Reject, container.Optional),
	}

	uplinkNASTransportIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_NAS_PDU, "NAS-PDU", container.Reject, container.Mandatory),
		ie(ID_EUTRAN_CGI, "EUTRAN-CGI", container.Ignore, container.Mandatory),
		ie(ID_TAI, "TAI", container.Ignore, container.Mandatory),
	}

	errorIndicationIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Ignore, container.Optional),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Ignore, container.Optional),
		ie(ID_CAUSE, "Cause", container.Ignore, container.Optional),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
		ie(ID_S_TMSI, "S-TMSI", container.Ignore, container.Optional),
	}

	s1SetupRequestIEs = container.ObjectSet{
		ie(ID_GLOBAL_ENB_ID, "Global-ENB-ID", container.Reject, container.Mandatory),
		ie(ID_ENB_NAME, "eNBname", container.Ignore, container.Optional),
		ie(ID_SUPPORTED_TAS, "SupportedTAs", container.Reject, container.Mandatory),
		ie(ID_DEFAULT_PAGING_DRX, "DefaultPagingDRX", container.Ignore, container.Mandatory),
	}

	s1SetupResponseIEs = container.ObjectSet{
		ie(ID_MME_NAME, "MMEname", container.Ignore, container.Optional),
		ie(ID_SERVED_GUMMEIS, "ServedGUMMEIs", container.Reject, container.Mandatory),
		ie(ID_RELATIVE_MME_CAPACITY, "RelativeMMECapacity", container.Ignore, container.Mandatory),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
	}

	s1SetupFailureIEs = container.ObjectSet{
		ie(ID_CAUSE, "Cause", container.Ignore, container.Mandatory),
		ie(ID_TIME_TO_WAIT, "TimeToWait", container.Ignore, container.Optional),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
	}

	ueContextReleaseCommandIEs = container.ObjectSet{
		ie(ID_UE_S1AP_IDS, "UE-S1AP-IDs", container.Reject, container.Mandatory),
		ie(ID_CAUSE, "Cause", container.Ignore, container.Mandatory),
	}

	ueContextReleaseCompleteIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Ignore, container.Mandatory),
		ie(ID_CRITICALITY_DIAGNOSTICS, "CriticalityDiagnostics", container.Ignore, container.Optional),
	}

	ueContextReleaseRequestIEs = container.ObjectSet{
		ie(ID_MME_UE_S1AP_ID, "MME-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_ENB_UE_S1AP_ID, "eNB-UE-S1AP-ID", container.Reject, container.Mandatory),
		ie(ID_CAUSE, "Cause", container.Ignore, container.Mandatory),
		ie(ID_GW_CONTEXT_RELEASE_INDICATION, "GWContextReleaseIndication", container.Reject, container.Optional),
	}

	pagingIEs = container.ObjectSet{
		ie(ID_UE_IDENTITY_INDEX_VALUE, "UEIdentityIndexValue", container.Ignore, container.Mandatory),
		ie(ID_UE_PAGING_ID, "UEPagingID", container.Ignore, container.Mandatory),
		ie(ID_PAGING_DRX, "pagingDRX", container.Ignore, container.Optional),
		ie(ID_CN_DOMAIN, "CNDomain", container.Ignore, container.Mandatory),
		ie(ID_TAI_LIST, "TAIList", container.Ignore, container.Mandatory),
	}
)

// HandoverRequired is sent by the source eNB to request the preparation of
// resources at the target.
type HandoverRequired struct {
	container.Report
	MMEUES1APID                        MMEUES1APID
	ENBUES1APID                        ENBUES1APID
	HandoverType                       HandoverType
	Cause                              Cause
	TargetID                           TargetID
	DirectForwardingPathAvailability   *DirectForwardingPathAvailability
	SourceToTargetTransparentContainer TransparentContainer
	CSGID                              *CSGID
}

func (m *HandoverRequired) Procedure() ProcedureCode { return PROCEDURE_HANDOVER_PREPARATION }
func (m *HandoverRequired) Kind() PDUType { return InitiatingMessage }
func (m *HandoverRequired) ObjectSet() container.ObjectSet { return handoverRequiredIEs }
func (m *HandoverRequired) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *HandoverRequired) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *HandoverRequired) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_HANDOVER_TYPE, Value: &m.HandoverType},
		{ID: ID_CAUSE, Value: &m.Cause},
		{ID: ID_TARGET_ID, Value: &m.TargetID},
	}
	fields = optional(fields, ID_DIRECT_FORWARDING_PATH_AVAILABILITY, m.DirectForwardingPathAvailability)
	fields = append(fields, container.Field{ID: ID_SOURCE_TO_TARGET_TRANSPARENT_CONTAINER, Value: &m.SourceToTargetTransparentContainer})
	return optional(fields, ID_CSG_ID, m.CSGID)
}

func (m *HandoverRequired) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_HANDOVER_TYPE:
		return &m.HandoverType
	case ID_CAUSE:
		return &m.Cause
	case ID_TARGET_ID:
		return &m.TargetID
	case ID_DIRECT_FORWARDING_PATH_AVAILABILITY:
		m.DirectForwardingPathAvailability = new(DirectForwardingPathAvailability)
		return m.DirectForwardingPathAvailability
	case ID_SOURCE_TO_TARGET_TRANSPARENT_CONTAINER:
		return &m.SourceToTargetTransparentContainer
	case ID_CSG_ID:
		m.CSGID = new(CSGID)
		return m.CSGID
	}
	return nil
}

// HandoverCommand answers a HandoverRequired once the target is prepared.
type HandoverCommand struct {
	container.Report
	MMEUES1APID                        MMEUES1APID
	ENBUES1APID                        ENBUES1APID
	HandoverType                       HandoverType
	TargetToSourceTransparentContainer TransparentContainer
	CriticalityDiagnostics             *CriticalityDiagnostics
}

func (m *HandoverCommand) Procedure() ProcedureCode { return PROCEDURE_HANDOVER_PREPARATION }
func (m *HandoverCommand) Kind() PDUType { return SuccessfulOutcome }
func (m *HandoverCommand) ObjectSet() container.ObjectSet { return handoverCommandIEs }
func (m *HandoverCommand) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *HandoverCommand) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *HandoverCommand) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_HANDOVER_TYPE, Value: &m.HandoverType},
		{ID: ID_TARGET_TO_SOURCE_TRANSPARENT_CONTAINER, Value: &m.TargetToSourceTransparentContainer},
	}
	return optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
}

func (m *HandoverCommand) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_HANDOVER_TYPE:
		return &m.HandoverType
	case ID_TARGET_TO_SOURCE_TRANSPARENT_CONTAINER:
		return &m.TargetToSourceTransparentContainer
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	}
	return nil
}

// HandoverPreparationFailure reports that the target could not be prepared.
type HandoverPreparationFailure struct {
	container.Report
	MMEUES1APID            MMEUES1APID
	ENBUES1APID            ENBUES1APID
	Cause                  Cause
	CriticalityDiagnostics *CriticalityDiagnostics
}

func (m *HandoverPreparationFailure) Procedure() ProcedureCode { return PROCEDURE_HANDOVER_PREPARATION }
func (m *HandoverPreparationFailure) Kind() PDUType { return UnsuccessfulOutcome }
func (m *HandoverPreparationFailure) Encode(e *per.Encoder) error {
	return encodeMessage(e, m)
}
func (m *HandoverPreparationFailure) Decode(d *per.Decoder) error {
	return decodeMessage(d, m)
}

func (m *HandoverPreparationFailure) ObjectSet() container.ObjectSet {
	return handoverPreparationFailureIEs
}

func (m *HandoverPreparationFailure) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_CAUSE, Value: &m.Cause},
	}
	return optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
}

func (m *HandoverPreparationFailure) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_CAUSE:
		return &m.Cause
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	}
	return nil
}

// HandoverCancel asks the MME to cancel an ongoing handover preparation.
type HandoverCancel struct {
	container.Report
	MMEUES1APID MMEUES1APID
	ENBUES1APID ENBUES1APID
	Cause       Cause
}

func (m *HandoverCancel) Procedure() ProcedureCode { return PROCEDURE_HANDOVER_CANCEL }
func (m *HandoverCancel) Kind() PDUType { return InitiatingMessage }
func (m *HandoverCancel) ObjectSet() container.ObjectSet { return handoverCancelIEs }
func (m *HandoverCancel) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *HandoverCancel) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *HandoverCancel) Fields() []container.Field {
	return []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_CAUSE, Value: &m.Cause},
	}
}

func (m *HandoverCancel) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_CAUSE:
		return &m.Cause
	}
	return nil
}

type HandoverCancelAcknowledge struct {
	container.Report
	MMEUES1APID            MMEUES1APID
	ENBUES1APID            ENBUES1APID
	CriticalityDiagnostics *CriticalityDiagnostics
}

func (m *HandoverCancelAcknowledge) Procedure() ProcedureCode { return PROCEDURE_HANDOVER_CANCEL }
func (m *HandoverCancelAcknowledge) Kind() PDUType { return SuccessfulOutcome }
func (m *HandoverCancelAcknowledge) Encode(e *per.Encoder) error {
	return encodeMessage(e, m)
}
func (m *HandoverCancelAcknowledge) Decode(d *per.Decoder) error {
	return decodeMessage(d, m)
}

func (m *HandoverCancelAcknowledge) ObjectSet() container.ObjectSet {
	return handoverCancelAcknowledgeIEs
}

func (m *HandoverCancelAcknowledge) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
	}
	return optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
}

func (m *HandoverCancelAcknowledge) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	}
	return nil
}

// InitialContextSetupRequest carries the UE context and the E-RABs to set
// up from the MME.
type InitialContextSetupRequest struct {
	container.Report
	MMEUES1APID                MMEUES1APID
	ENBUES1APID                ENBUES1APID
	UEAggregateMaximumBitrate  UEAggregateMaximumBitrate
	ERABToBeSetupListCtxtSUReq ERABToBeSetupListCtxtSUReq
	UESecurityCapabilities     UESecurityCapabilities
	SecurityKey                SecurityKey
	SubscriberProfileIDforRFP  *SubscriberProfileIDforRFP
}

func (m *InitialContextSetupRequest) Procedure() ProcedureCode { return PROCEDURE_INITIAL_CONTEXT_SETUP }
func (m *InitialContextSetupRequest) Kind() PDUType { return InitiatingMessage }
func (m *InitialContextSetupRequest) Encode(e *per.Encoder) error {
	return encodeMessage(e, m)
}
func (m *InitialContextSetupRequest) Decode(d *per.Decoder) error {
	return decodeMessage(d, m)
}

func (m *InitialContextSetupRequest) ObjectSet() container.ObjectSet {
	return initialContextSetupRequestIEs
}

func (m *InitialContextSetupRequest) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_UE_AGGREGATE_MAXIMUM_BITRATE, Value: &m.UEAggregateMaximumBitrate},
		{ID: ID_E_RAB_TO_BE_SETUP_LIST_CTXT_SU_REQ, Value: &m.ERABToBeSetupListCtxtSUReq},
		{ID: ID_UE_SECURITY_CAPABILITIES, Value: &m.UESecurityCapabilities},
		{ID: ID_SECURITY_KEY, Value: &m.SecurityKey},
	}
	return optional(fields, ID_SUBSCRIBER_PROFILE_ID_FOR_RFP, m.SubscriberProfileIDforRFP)
}

func (m *InitialContextSetupRequest) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_UE_AGGREGATE_MAXIMUM_BITRATE:
		return &m.UEAggregateMaximumBitrate
	case ID_E_RAB_TO_BE_SETUP_LIST_CTXT_SU_REQ:
		return &m.ERABToBeSetupListCtxtSUReq
	case ID_UE_SECURITY_CAPABILITIES:
		return &m.UESecurityCapabilities
	case ID_SECURITY_KEY:
		return &m.SecurityKey
	case ID_SUBSCRIBER_PROFILE_ID_FOR_RFP:
		m.SubscriberProfileIDforRFP = new(SubscriberProfileIDforRFP)
		return m.SubscriberProfileIDforRFP
	}
	return nil
}

type InitialContextSetupResponse struct {
	container.Report
	MMEUES1APID                    MMEUES1APID
	ENBUES1APID                    ENBUES1APID
	ERABSetupListCtxtSURes         ERABSetupListCtxtSURes
	ERABFailedToSetupListCtxtSURes ERABList
	CriticalityDiagnostics         *CriticalityDiagnostics
}

func (m *InitialContextSetupResponse) Procedure() ProcedureCode { return PROCEDURE_INITIAL_CONTEXT_SETUP }
func (m *InitialContextSetupResponse) Kind() PDUType { return SuccessfulOutcome }
func (m *InitialContextSetupResponse) Encode(e *per.Encoder) error {
	return encodeMessage(e, m)
}
func (m *InitialContextSetupResponse) Decode(d *per.Decoder) error {
	return decodeMessage(d, m)
}

func (m *InitialContextSetupResponse) ObjectSet() container.ObjectSet {
	return initialContextSetupResponseIEs
}

func (m *InitialContextSetupResponse) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_E_RAB_SETUP_LIST_CTXT_SU_RES, Value: &m.ERABSetupListCtxtSURes},
	}
	if len(m.ERABFailedToSetupListCtxtSURes) > 0 {
		fields = append(fields, container.Field{ID: ID_E_RAB_FAILED_TO_SETUP_LIST_CTXT_SU_RES, Value: &m.ERABFailedToSetupListCtxtSURes})
	}
	return optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
}

func (m *InitialContextSetupResponse) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_E_RAB_SETUP_LIST_CTXT_SU_RES:
		return &m.ERABSetupListCtxtSURes
	case ID_E_RAB_FAILED_TO_SETUP_LIST_CTXT_SU_RES:
		return &m.ERABFailedToSetupListCtxtSURes
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	}
	return nil
}

type InitialContextSetupFailure struct {
	container.Report
	MMEUES1APID            MMEUES1APID
	ENBUES1APID            ENBUES1APID
	Cause                  Cause
	CriticalityDiagnostics *CriticalityDiagnostics
}

func (m *InitialContextSetupFailure) Procedure() ProcedureCode { return PROCEDURE_INITIAL_CONTEXT_SETUP }
func (m *InitialContextSetupFailure) Kind() PDUType { return UnsuccessfulOutcome }
func (m *InitialContextSetupFailure) Encode(e *per.Encoder) error {
	return encodeMessage(e, m)
}
func (m *InitialContextSetupFailure) Decode(d *per.Decoder) error {
	return decodeMessage(d, m)
}

func (m *InitialContextSetupFailure) ObjectSet() container.ObjectSet {
	return initialContextSetupFailureIEs
}

func (m *InitialContextSetupFailure) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_CAUSE, Value: &m.Cause},
	}
	return optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
}

func (m *InitialContextSetupFailure) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_CAUSE:
		return &m.Cause
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	}
	return nil
}

type DownlinkNASTransport struct {
	container.Report
	MMEUES1APID               MMEUES1APID
	ENBUES1APID               ENBUES1APID
	NASPDU                    NASPDU
	SubscriberProfileIDforRFP *SubscriberProfileIDforRFP
}

func (m *DownlinkNASTransport) Procedure() ProcedureCode { return PROCEDURE_DOWNLINK_NAS_TRANSPORT }
func (m *DownlinkNASTransport) Kind() PDUType { return InitiatingMessage }
func (m *DownlinkNASTransport) ObjectSet() container.ObjectSet { return downlinkNASTransportIEs }
func (m *DownlinkNASTransport) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *DownlinkNASTransport) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *DownlinkNASTransport) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_NAS_PDU, Value: &m.NASPDU},
	}
	return optional(fields, ID_SUBSCRIBER_PROFILE_ID_FOR_RFP, m.SubscriberProfileIDforRFP)
}

func (m *DownlinkNASTransport) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_NAS_PDU:
		return &m.NASPDU
	case ID_SUBSCRIBER_PROFILE_ID_FOR_RFP:
		m.SubscriberProfileIDforRFP = new(SubscriberProfileIDforRFP)
		return m.SubscriberProfileIDforRFP
	}
	return nil
}

// InitialUEMessage carries the first NAS message of a UE to the MME.
type InitialUEMessage struct {
	container.Report
	ENBUES1APID           ENBUES1APID
	NASPDU                NASPDU
	TAI                   TAI
	EUTRANCGI             EUTRANCGI
	RRCEstablishmentCause RRCEstablishmentCause
	STMSI                 *STMSI
	CSGID                 *CSGID
}

func (m *InitialUEMessage) Procedure() ProcedureCode { return PROCEDURE_INITIAL_UE_MESSAGE }
func (m *InitialUEMessage) Kind() PDUType { return InitiatingMessage }
func (m *InitialUEMessage) ObjectSet() container.ObjectSet { return initialUEMessageIEs }
func (m *InitialUEMessage) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *InitialUEMessage) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *InitialUEMessage) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_NAS_PDU, Value: &m.NASPDU},
		{ID: ID_TAI, Value: &m.TAI},
		{ID: ID_EUTRAN_CGI, Value: &m.EUTRANCGI},
		{ID: ID_RRC_ESTABLISHMENT_CAUSE, Value: &m.RRCEstablishmentCause},
	}
	fields = optional(fields, ID_S_TMSI, m.STMSI)
	return optional(fields, ID_CSG_ID, m.CSGID)
}

func (m *InitialUEMessage) Target(id uint16) per.Value {
	switch id {
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_NAS_PDU:
		return &m.NASPDU
	case ID_TAI:
		return &m.TAI
	case ID_EUTRAN_CGI:
		return &m.EUTRANCGI
	case ID_RRC_ESTABLISHMENT_CAUSE:
		return &m.RRCEstablishmentCause
	case ID_S_TMSI:
		m.STMSI = new(STMSI)
		return m.STMSI
	case ID_CSG_ID:
		m.CSGID = new(CSGID)
		return m.CSGID
	}
	return nil
}

type UplinkNASTransport struct {
	container.Report
	MMEUES1APID MMEUES1APID
	ENBUES1APID ENBUES1APID
	NASPDU      NASPDU
	EUTRANCGI   EUTRANCGI
	TAI         TAI
}

func (m *UplinkNASTransport) Procedure() ProcedureCode { return PROCEDURE_UPLINK_NAS_TRANSPORT }
func (m *UplinkNASTransport) Kind() PDUType { return InitiatingMessage }
func (m *UplinkNASTransport) ObjectSet() container.ObjectSet { return uplinkNASTransportIEs }
func (m *UplinkNASTransport) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *UplinkNASTransport) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *UplinkNASTransport) Fields() []container.Field {
	return []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_NAS_PDU, Value: &m.NASPDU},
		{ID: ID_EUTRAN_CGI, Value: &m.EUTRANCGI},
		{ID: ID_TAI, Value: &m.TAI},
	}
}

func (m *UplinkNASTransport) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_NAS_PDU:
		return &m.NASPDU
	case ID_EUTRAN_CGI:
		return &m.EUTRANCGI
	case ID_TAI:
		return &m.TAI
	}
	return nil
}

// ErrorIndication reports a detected error in a received message. Every IE
// is optional.
type ErrorIndication struct {
	container.Report
	MMEUES1APID            *MMEUES1APID
	ENBUES1APID            *ENBUES1APID
	Cause                  *Cause
	CriticalityDiagnostics *CriticalityDiagnostics
	STMSI                  *STMSI
}

func (m *ErrorIndication) Procedure() ProcedureCode { return PROCEDURE_ERROR_INDICATION }
func (m *ErrorIndication) Kind() PDUType { return InitiatingMessage }
func (m *ErrorIndication) ObjectSet() container.ObjectSet { return errorIndicationIEs }
func (m *ErrorIndication) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *ErrorIndication) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *ErrorIndication) Fields() []container.Field {
	var fields []container.Field
	fields = optional(fields, ID_MME_UE_S1AP_ID, m.MMEUES1APID)
	fields = optional(fields, ID_ENB_UE_S1AP_ID, m.ENBUES1APID)
	fields = optional(fields, ID_CAUSE, m.Cause)
	fields = optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
	return optional(fields, ID_S_TMSI, m.STMSI)
}

func (m *ErrorIndication) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		m.MMEUES1APID = new(MMEUES1APID)
		return m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		m.ENBUES1APID = new(ENBUES1APID)
		return m.ENBUES1APID
	case ID_CAUSE:
		m.Cause = new(Cause)
		return m.Cause
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	case ID_S_TMSI:
		m.STMSI = new(STMSI)
		return m.STMSI
	}
	return nil
}

// S1SetupRequest opens the S1 association from the eNB side.
type S1SetupRequest struct {
	container.Report
	GlobalENBID      GlobalENBID
	ENBName          *ENBName
	SupportedTAs     SupportedTAs
	DefaultPagingDRX PagingDRX
}

func (m *S1SetupRequest) Procedure() ProcedureCode { return PROCEDURE_S1_SETUP }
func (m *S1SetupRequest) Kind() PDUType { return InitiatingMessage }
func (m *S1SetupRequest) ObjectSet() container.ObjectSet { return s1SetupRequestIEs }
func (m *S1SetupRequest) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *S1SetupRequest) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *S1SetupRequest) Fields() []container.Field {
	fields := []container.Field{{ID: ID_GLOBAL_ENB_ID, Value: &m.GlobalENBID}}
	fields = optional(fields, ID_ENB_NAME, m.ENBName)
	return append(fields,
		container.Field{ID: ID_SUPPORTED_TAS, Value: &m.SupportedTAs},
		container.Field{ID: ID_DEFAULT_PAGING_DRX, Value: &m.DefaultPagingDRX})
}

func (m *S1SetupRequest) Target(id uint16) per.Value {
	switch id {
	case ID_GLOBAL_ENB_ID:
		return &m.GlobalENBID
	case ID_ENB_NAME:
		m.ENBName = new(ENBName)
		return m.ENBName
	case ID_SUPPORTED_TAS:
		return &m.SupportedTAs
	case ID_DEFAULT_PAGING_DRX:
		return &m.DefaultPagingDRX
	}
	return nil
}

type S1SetupResponse struct {
	container.Report
	MMEName                *MMEName
	ServedGUMMEIs          ServedGUMMEIs
	RelativeMMECapacity    RelativeMMECapacity
	CriticalityDiagnostics *CriticalityDiagnostics
}

func (m *S1SetupResponse) Procedure() ProcedureCode { return PROCEDURE_S1_SETUP }
func (m *S1SetupResponse) Kind() PDUType { return SuccessfulOutcome }
func (m *S1SetupResponse) ObjectSet() container.ObjectSet { return s1SetupResponseIEs }
func (m *S1SetupResponse) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *S1SetupResponse) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *S1SetupResponse) Fields() []container.Field {
	fields := optional(nil, ID_MME_NAME, m.MMEName)
	fields = append(fields,
		container.Field{ID: ID_SERVED_GUMMEIS, Value: &m.ServedGUMMEIs},
		container.Field{ID: ID_RELATIVE_MME_CAPACITY, Value: &m.RelativeMMECapacity})
	return optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
}

func (m *S1SetupResponse) Target(id uint16) per.Value {
	switch id {
	case ID_MME_NAME:
		m.MMEName = new(MMEName)
		return m.MMEName
	case ID_SERVED_GUMMEIS:
		return &m.ServedGUMMEIs
	case ID_RELATIVE_MME_CAPACITY:
		return &m.RelativeMMECapacity
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	}
	return nil
}

type S1SetupFailure struct {
	container.Report
	Cause                  Cause
	TimeToWait             *TimeToWait
	CriticalityDiagnostics *CriticalityDiagnostics
}

func (m *S1SetupFailure) Procedure() ProcedureCode { return PROCEDURE_S1_SETUP }
func (m *S1SetupFailure) Kind() PDUType { return UnsuccessfulOutcome }
func (m *S1SetupFailure) ObjectSet() container.ObjectSet { return s1SetupFailureIEs }
func (m *S1SetupFailure) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *S1SetupFailure) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *S1SetupFailure) Fields() []container.Field {
	fields := []container.Field{{ID: ID_CAUSE, Value: &m.Cause}}
	fields = optional(fields, ID_TIME_TO_WAIT, m.TimeToWait)
	return optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
}

func (m *S1SetupFailure) Target(id uint16) per.Value {
	switch id {
	case ID_CAUSE:
		return &m.Cause
	case ID_TIME_TO_WAIT:
		m.TimeToWait = new(TimeToWait)
		return m.TimeToWait
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	}
	return nil
}

type UEContextReleaseCommand struct {
	container.Report
	UES1APIDs UES1APIDs
	Cause     Cause
}

func (m *UEContextReleaseCommand) Procedure() ProcedureCode { return PROCEDURE_UE_CONTEXT_RELEASE }
func (m *UEContextReleaseCommand) Kind() PDUType { return InitiatingMessage }
func (m *UEContextReleaseCommand) Encode(e *per.Encoder) error {
	return encodeMessage(e, m)
}
func (m *UEContextReleaseCommand) Decode(d *per.Decoder) error {
	return decodeMessage(d, m)
}

func (m *UEContextReleaseCommand) ObjectSet() container.ObjectSet {
	return ueContextReleaseCommandIEs
}

func (m *UEContextReleaseCommand) Fields() []container.Field {
	return []container.Field{
		{ID: ID_UE_S1AP_IDS, Value: &m.UES1APIDs},
		{ID: ID_CAUSE, Value: &m.Cause},
	}
}

func (m *UEContextReleaseCommand) Target(id uint16) per.Value {
	switch id {
	case ID_UE_S1AP_IDS:
		return &m.UES1APIDs
	case ID_CAUSE:
		return &m.Cause
	}
	return nil
}

type UEContextReleaseComplete struct {
	container.Report
	MMEUES1APID            MMEUES1APID
	ENBUES1APID            ENBUES1APID
	CriticalityDiagnostics *CriticalityDiagnostics
}

func (m *UEContextReleaseComplete) Procedure() ProcedureCode { return PROCEDURE_UE_CONTEXT_RELEASE }
func (m *UEContextReleaseComplete) Kind() PDUType { return SuccessfulOutcome }
func (m *UEContextReleaseComplete) Encode(e *per.Encoder) error {
	return encodeMessage(e, m)
}
func (m *UEContextReleaseComplete) Decode(d *per.Decoder) error {
	return decodeMessage(d, m)
}

func (m *UEContextReleaseComplete) ObjectSet() container.ObjectSet {
	return ueContextReleaseCompleteIEs
}

func (m *UEContextReleaseComplete) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
	}
	return optional(fields, ID_CRITICALITY_DIAGNOSTICS, m.CriticalityDiagnostics)
}

func (m *UEContextReleaseComplete) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_CRITICALITY_DIAGNOSTICS:
		m.CriticalityDiagnostics = new(CriticalityDiagnostics)
		return m.CriticalityDiagnostics
	}
	return nil
}

// UEContextReleaseRequest is sent by the eNB to ask the MME to release the
// UE-associated logical connection.
type UEContextReleaseRequest struct {
	container.Report
	MMEUES1APID                MMEUES1APID
	ENBUES1APID                ENBUES1APID
	Cause                      Cause
	GWContextReleaseIndication *GWContextReleaseIndication
}

func (m *UEContextReleaseRequest) Procedure() ProcedureCode {
	return PROCEDURE_UE_CONTEXT_RELEASE_REQUEST
}
func (m *UEContextReleaseRequest) Kind() PDUType { return InitiatingMessage }
func (m *UEContextReleaseRequest) Encode(e *per.Encoder) error {
	return encodeMessage(e, m)
}
func (m *UEContextReleaseRequest) Decode(d *per.Decoder) error {
	return decodeMessage(d, m)
}

func (m *UEContextReleaseRequest) ObjectSet() container.ObjectSet {
	return ueContextReleaseRequestIEs
}

func (m *UEContextReleaseRequest) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_MME_UE_S1AP_ID, Value: &m.MMEUES1APID},
		{ID: ID_ENB_UE_S1AP_ID, Value: &m.ENBUES1APID},
		{ID: ID_CAUSE, Value: &m.Cause},
	}
	return optional(fields, ID_GW_CONTEXT_RELEASE_INDICATION, m.GWContextReleaseIndication)
}

func (m *UEContextReleaseRequest) Target(id uint16) per.Value {
	switch id {
	case ID_MME_UE_S1AP_ID:
		return &m.MMEUES1APID
	case ID_ENB_UE_S1AP_ID:
		return &m.ENBUES1APID
	case ID_CAUSE:
		return &m.Cause
	case ID_GW_CONTEXT_RELEASE_INDICATION:
		m.GWContextReleaseIndication = new(GWContextReleaseIndication)
		return m.GWContextReleaseIndication
	}
	return nil
}

// Paging is sent by the MME to the eNBs serving the tracking areas in
// TAIList.
type Paging struct {
	container.Report
	UEIdentityIndexValue UEIdentityIndexValue
	UEPagingID           UEPagingID
	PagingDRX            *PagingDRX
	CNDomain             CNDomain
	TAIList              TAIList
}

func (m *Paging) Procedure() ProcedureCode { return PROCEDURE_PAGING }
func (m *Paging) Kind() PDUType { return InitiatingMessage }
func (m *Paging) ObjectSet() container.ObjectSet { return pagingIEs }
func (m *Paging) Encode(e *per.Encoder) error { return encodeMessage(e, m) }
func (m *Paging) Decode(d *per.Decoder) error { return decodeMessage(d, m) }

func (m *Paging) Fields() []container.Field {
	fields := []container.Field{
		{ID: ID_UE_IDENTITY_INDEX_VALUE, Value: &m.UEIdentityIndexValue},
		{ID: ID_UE_PAGING_ID, Value: &m.UEPagingID},
	}
	fields = optional(fields, ID_PAGING_DRX, m.PagingDRX)
	return append(fields,
		container.Field{ID: ID_CN_DOMAIN, Value: &m.CNDomain},
		container.Field{ID: ID_TAI_LIST, Value: &m.TAIList},
	)
}

func (m *Paging) Target(id uint16) per.Value {
	switch id {
	case ID_UE_IDENTITY_INDEX_VALUE:
		return &m.UEIdentityIndexValue
	case ID_UE_PAGING_ID:
		return &m.UEPagingID
	case ID_PAGING_DRX:
		m.PagingDRX = new(PagingDRX)
		return m.PagingDRX
	case ID_CN_DOMAIN:
		return &m.CNDomain
	case ID_TAI_LIST:
		return &m.TAIList
	}
	return nil
}
