package procedure

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/per"
	"github.com/thebagchi/s1ap-go/lib/s1ap"
)

type recorder struct {
	mutex sync.Mutex
	sent  [][]byte
}

func (r *recorder) Send(data []byte) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.sent = append(r.sent, data)
	return nil
}

// indications decodes every PDU sent so far as an ErrorIndication.
func (r *recorder) indications(t *testing.T) []*s1ap.ErrorIndication {
	t.Helper()
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var result []*s1ap.ErrorIndication
	for _, data := range r.sent {
		pdu, err := s1ap.Unmarshal(data)
		require.NoError(t, err)
		indication, ok := pdu.Value.(*s1ap.ErrorIndication)
		require.True(t, ok, "sent %s", pdu)
		result = append(result, indication)
	}
	return result
}

type ie struct {
	id          uint16
	criticality container.Criticality
	value       per.Value
}

// handoverCancel builds a HandoverCancel PDU field by field so that IEs
// outside its object set can be added.
func handoverCancel(t *testing.T, extra ...ie) []byte {
	t.Helper()
	cause := s1ap.NewRadioNetworkCause(s1ap.CauseRadioNetworkHandoverDesirableForRadioReason)
	mme, enb := s1ap.MMEUES1APID(3), s1ap.ENBUES1APID(4)
	fields := append([]ie{
		{s1ap.ID_MME_UE_S1AP_ID, container.Reject, &mme},
		{s1ap.ID_ENB_UE_S1AP_ID, container.Reject, &enb},
		{s1ap.ID_CAUSE, container.Ignore, &cause},
	}, extra...)

	body := per.NewEncoder(true)
	require.NoError(t, body.EncodeSequencePreamble(true, false))
	_, _, err := body.EncodeLengthDeterminant(uint64(len(fields)), per.Bound[uint64](0), per.Bound[uint64](65535))
	require.NoError(t, err)
	for _, f := range fields {
		require.NoError(t, container.EncodeField(body, f.id, f.criticality, f.value))
	}

	e := per.NewEncoder(true)
	require.NoError(t, e.EncodeChoiceIndex(uint64(s1ap.InitiatingMessage), 3, true))
	require.NoError(t, s1ap.PROCEDURE_HANDOVER_CANCEL.Encode(e))
	require.NoError(t, container.Reject.Encode(e))
	require.NoError(t, e.EncodeOpenTypeBytes(body.Bytes()))
	return e.Bytes()
}

func TestDispatch(t *testing.T) {
	var (
		sender     = new(recorder)
		dispatcher = NewDispatcher(sender, nil)
		received   *s1ap.PDU
	)
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_HANDOVER_CANCEL, func(ctx context.Context, pdu *s1ap.PDU) error {
		received = pdu
		return nil
	})

	require.NoError(t, dispatcher.Dispatch(context.Background(), handoverCancel(t)))
	require.NotNil(t, received)
	cancel, ok := received.Value.(*s1ap.HandoverCancel)
	require.True(t, ok)
	assert.Equal(t, s1ap.MMEUES1APID(3), cancel.MMEUES1APID)
	assert.Empty(t, sender.sent)

	failure := errors.New("handler failed")
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_HANDOVER_CANCEL, func(context.Context, *s1ap.PDU) error {
		return failure
	})
	assert.Equal(t, failure, dispatcher.Dispatch(context.Background(), handoverCancel(t)))
}

func TestDispatchNoHandler(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)
	err := dispatcher.Dispatch(context.Background(), handoverCancel(t))
	assert.True(t, errors.Is(err, ErrNoHandler))
	assert.Empty(t, sender.sent)
}

func TestTransferSyntaxError(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)
	assert.Error(t, dispatcher.Dispatch(context.Background(), []byte{0x00}))

	indications := sender.indications(t)
	require.Len(t, indications, 1)
	value, ok := indications[0].Cause.Protocol()
	require.True(t, ok)
	assert.Equal(t, s1ap.CauseProtocolTransferSyntaxError, value)
	assert.Nil(t, indications[0].CriticalityDiagnostics)
	assert.Nil(t, indications[0].MMEUES1APID)
}

func TestRejectedIE(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_HANDOVER_CANCEL, func(context.Context, *s1ap.PDU) error {
		t.Fatal("rejected PDU delivered")
		return nil
	})

	unknown := s1ap.MMEUES1APID(9)
	err := dispatcher.Dispatch(context.Background(), handoverCancel(t, ie{999, container.Reject, &unknown}))
	assert.True(t, errors.Is(err, container.ErrRejectedIE))

	indications := sender.indications(t)
	require.Len(t, indications, 1)
	indication := indications[0]
	assert.Equal(t, "protocol: abstract-syntax-error-reject", CauseString(indication.Cause))
	require.NotNil(t, indication.MMEUES1APID)
	assert.Equal(t, s1ap.MMEUES1APID(3), *indication.MMEUES1APID)
	require.NotNil(t, indication.ENBUES1APID)
	assert.Equal(t, s1ap.ENBUES1APID(4), *indication.ENBUES1APID)

	diagnostics := indication.CriticalityDiagnostics
	require.NotNil(t, diagnostics)
	assert.Equal(t, s1ap.PROCEDURE_HANDOVER_CANCEL, *diagnostics.ProcedureCode)
	assert.Equal(t, s1ap.TriggeringInitiatingMessage, *diagnostics.TriggeringMessage)
	assert.Equal(t, []s1ap.CriticalityDiagnosticsIEItem{
		{IECriticality: container.Reject, IEID: 999, TypeOfError: container.NotUnderstood},
	}, diagnostics.IEsCriticalityDiagnostics)
}

func TestDuplicateIE(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_HANDOVER_CANCEL, func(context.Context, *s1ap.PDU) error {
		t.Fatal("falsely constructed PDU delivered")
		return nil
	})

	again := s1ap.NewRadioNetworkCause(s1ap.CauseRadioNetworkUnspecified)
	err := dispatcher.Dispatch(context.Background(), handoverCancel(t, ie{s1ap.ID_CAUSE, container.Ignore, &again}))
	assert.True(t, errors.Is(err, container.ErrDuplicateIE))

	indications := sender.indications(t)
	require.Len(t, indications, 1)
	value, ok := indications[0].Cause.Protocol()
	require.True(t, ok)
	assert.Equal(t, s1ap.CauseProtocolAbstractSyntaxErrorFalselyConstructedMessage, value)
	require.NotNil(t, indications[0].CriticalityDiagnostics)
	items := indications[0].CriticalityDiagnostics.IEsCriticalityDiagnostics
	require.Len(t, items, 1)
	assert.Equal(t, uint16(s1ap.ID_CAUSE), items[0].IEID)
}

func TestNotifiedIE(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)
	delivered := false
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_HANDOVER_CANCEL, func(context.Context, *s1ap.PDU) error {
		delivered = true
		return nil
	})

	unknown := s1ap.MMEUES1APID(9)
	require.NoError(t, dispatcher.Dispatch(context.Background(), handoverCancel(t, ie{999, container.Notify, &unknown})))
	assert.True(t, delivered)

	indications := sender.indications(t)
	require.Len(t, indications, 1)
	value, ok := indications[0].Cause.Protocol()
	require.True(t, ok)
	assert.Equal(t, s1ap.CauseProtocolAbstractSyntaxErrorIgnoreAndNotify, value)
	require.NotNil(t, indications[0].CriticalityDiagnostics)
	assert.Len(t, indications[0].CriticalityDiagnostics.IEsCriticalityDiagnostics, 1)
}

func TestNotifiedExtension(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)
	var tai s1ap.TAI
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_INITIAL_UE_MESSAGE, func(_ context.Context, pdu *s1ap.PDU) error {
		tai = pdu.Value.(*s1ap.InitialUEMessage).TAI
		return nil
	})

	plmn, err := s1ap.NewPLMNIdentity("001", "01")
	require.NoError(t, err)
	extensions := container.Extensions{{ID: 200, Criticality: container.Notify, Value: []byte{0x05}}}
	data, err := s1ap.Marshal(s1ap.NewPDU(&s1ap.InitialUEMessage{
		ENBUES1APID:           7,
		NASPDU:                s1ap.NASPDU{0x07, 0x41},
		TAI:                   s1ap.TAI{PLMNIdentity: plmn, TAC: s1ap.TAC{0x00, 0x07}, IEExtensions: extensions},
		EUTRANCGI:             s1ap.EUTRANCGI{PLMNIdentity: plmn, CellID: 0x19B01},
		RRCEstablishmentCause: s1ap.RRCEstablishmentCauseMTAccess,
	}))
	require.NoError(t, err)

	require.NoError(t, dispatcher.Dispatch(context.Background(), data))
	assert.Equal(t, extensions, tai.IEExtensions)

	indications := sender.indications(t)
	require.Len(t, indications, 1)
	value, ok := indications[0].Cause.Protocol()
	require.True(t, ok)
	assert.Equal(t, s1ap.CauseProtocolAbstractSyntaxErrorIgnoreAndNotify, value)
	require.NotNil(t, indications[0].CriticalityDiagnostics)
	items := indications[0].CriticalityDiagnostics.IEsCriticalityDiagnostics
	require.Len(t, items, 1)
	assert.Equal(t, uint16(200), items[0].IEID)
}

func TestIgnoredIE(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_HANDOVER_CANCEL, func(context.Context, *s1ap.PDU) error {
		return nil
	})
	unknown := s1ap.MMEUES1APID(9)
	require.NoError(t, dispatcher.Dispatch(context.Background(), handoverCancel(t, ie{999, container.Ignore, &unknown})))
	assert.Empty(t, sender.sent)
}

func TestUnknownProcedure(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)

	// procedure 5 with ignore criticality is dropped silently
	err := dispatcher.Dispatch(context.Background(), []byte{0x00, 0x05, 0x40, 0x01, 0x00})
	assert.True(t, errors.Is(err, s1ap.ErrUnknownProcedure))
	assert.Empty(t, sender.sent)

	err = dispatcher.Dispatch(context.Background(), []byte{0x00, 0x05, 0x00, 0x01, 0x00})
	assert.True(t, errors.Is(err, s1ap.ErrUnknownProcedure))
	indications := sender.indications(t)
	require.Len(t, indications, 1)
	assert.Equal(t, s1ap.ProcedureCode(5), *indications[0].CriticalityDiagnostics.ProcedureCode)
	assert.Nil(t, indications[0].CriticalityDiagnostics.IEsCriticalityDiagnostics)
}

func TestNoErrorIndicationLoop(t *testing.T) {
	sender := new(recorder)
	dispatcher := NewDispatcher(sender, nil)

	cause := s1ap.NewMiscCause(s1ap.CauseMisc(0))
	data, err := s1ap.Marshal(s1ap.NewPDU(&s1ap.ErrorIndication{Cause: &cause}))
	require.NoError(t, err)
	// truncated ErrorIndication still decodes its header
	err = dispatcher.Dispatch(context.Background(), data[:len(data)-1])
	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestConcurrentDispatch(t *testing.T) {
	var (
		sender     = new(recorder)
		dispatcher = NewDispatcher(sender, nil)
		mutex      sync.Mutex
		count      int
	)
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_HANDOVER_CANCEL, func(context.Context, *s1ap.PDU) error {
		mutex.Lock()
		defer mutex.Unlock()
		count++
		return nil
	})

	data := handoverCancel(t)
	var group sync.WaitGroup
	for range 16 {
		group.Add(1)
		go func() {
			defer group.Done()
			assert.NoError(t, dispatcher.Dispatch(context.Background(), data))
		}()
	}
	group.Wait()
	assert.Equal(t, 16, count)
}

func TestUEIDs(t *testing.T) {
	mme, enb := UEIDs(&s1ap.S1SetupFailure{})
	assert.Nil(t, mme)
	assert.Nil(t, enb)

	id := s1ap.ENBUES1APID(11)
	mme, enb = UEIDs(&s1ap.ErrorIndication{ENBUES1APID: &id})
	assert.Nil(t, mme)
	require.NotNil(t, enb)
	assert.Equal(t, id, *enb)

	assert.Equal(t, "unknown", CauseString(nil))
}
