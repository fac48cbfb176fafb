package s1ap

import (
	"fmt"

	"github.com/thebagchi/s1ap-go/lib/per"
)

// ENBIDPresent names the live alternative of an ENB-ID.
type ENBIDPresent uint8

const (
	ENBIDPresentNothing ENBIDPresent = iota
	ENBIDPresentMacroENBID
	ENBIDPresentHomeENBID
	ENBIDPresentShortMacroENBID
	ENBIDPresentLongMacroENBID
)

var enbIDBits = [...]uint64{
	ENBIDPresentMacroENBID:      MACRO_ENB_ID_BITS,
	ENBIDPresentHomeENBID:       HOME_ENB_ID_BITS,
	ENBIDPresentShortMacroENBID: SHORT_MACRO_ENB_ID_BITS,
	ENBIDPresentLongMacroENBID:  LONG_MACRO_ENB_ID_BITS,
}

// ENB-ID ::= CHOICE { macroENB-ID BIT STRING (SIZE(20)), homeENB-ID BIT
// STRING (SIZE(28)), ..., short-macroENB-ID BIT STRING (SIZE(18)),
// long-macroENB-ID BIT STRING (SIZE(21)) }
type ENBID struct {
	choice
}

// NewENBID returns an ENB-ID with alternative present set to id.
func NewENBID(present ENBIDPresent, id uint32) ENBID {
	var value ENBID
	value.Set(present, id)
	return value
}

// Set makes present the live alternative. Setting ENBIDPresentNothing
// clears the choice.
func (id *ENBID) Set(present ENBIDPresent, value uint32) {
	if present == ENBIDPresentNothing || int(present) >= len(enbIDBits) {
		id.set(0, nil)
		return
	}
	id.set(uint8(present), &fixedBits{size: enbIDBits[present], value: uint64(value)})
}

// Present returns the live alternative.
func (id ENBID) Present() ENBIDPresent {
	return ENBIDPresent(id.present)
}

// Get returns the identity held by alternative present.
func (id ENBID) Get(present ENBIDPresent) (uint32, bool) {
	bits, ok := alternativeOf[fixedBits](id.choice, uint8(present))
	if !ok {
		return 0, false
	}
	return uint32(bits.value), true
}

func (id ENBID) MacroENBID() (uint32, bool) { return id.Get(ENBIDPresentMacroENBID) }
func (id ENBID) HomeENBID() (uint32, bool) { return id.Get(ENBIDPresentHomeENBID) }

func (id ENBID) String() string {
	names := [...]string{"nothing", "macroENB-ID", "homeENB-ID", "short-macroENB-ID", "long-macroENB-ID"}
	value, ok := id.Get(id.Present())
	if !ok {
		return names[0]
	}
	return fmt.Sprintf("%s: %#x", names[id.Present()], value)
}

func (id *ENBID) Encode(e *per.Encoder) error {
	return id.encode(e, "ENB-ID", 2, true)
}

func (id *ENBID) Decode(d *per.Decoder) error {
	alternative := func(present ENBIDPresent) func() per.Value {
		return func() per.Value { return &fixedBits{size: enbIDBits[present]} }
	}
	return id.decode(d, "ENB-ID", 2, true,
		alternative(ENBIDPresentMacroENBID),
		alternative(ENBIDPresentHomeENBID),
		alternative(ENBIDPresentShortMacroENBID),
		alternative(ENBIDPresentLongMacroENBID))
}

// UES1APIDsPresent names the live alternative of UE-S1AP-IDs.
type UES1APIDsPresent uint8

const (
	UES1APIDsPresentNothing UES1APIDsPresent = iota
	UES1APIDsPresentUES1APIDPair
	UES1APIDsPresentMMEUES1APID
)

// UE-S1AP-IDs ::= CHOICE { uE-S1AP-ID-pair, mME-UE-S1AP-ID, ... }
type UES1APIDs struct {
	choice
}

func (ids UES1APIDs) Present() UES1APIDsPresent {
	return UES1APIDsPresent(ids.present)
}

func (ids *UES1APIDs) SetUES1APIDPair(pair UES1APIDPair) {
	ids.set(uint8(UES1APIDsPresentUES1APIDPair), &pair)
}

func (ids *UES1APIDs) SetMMEUES1APID(id MMEUES1APID) {
	ids.set(uint8(UES1APIDsPresentMMEUES1APID), &id)
}

func (ids UES1APIDs) UES1APIDPair() (UES1APIDPair, bool) {
	return alternativeOf[UES1APIDPair](ids.choice, uint8(UES1APIDsPresentUES1APIDPair))
}

func (ids UES1APIDs) MMEUES1APID() (MMEUES1APID, bool) {
	return alternativeOf[MMEUES1APID](ids.choice, uint8(UES1APIDsPresentMMEUES1APID))
}

func (ids *UES1APIDs) Encode(e *per.Encoder) error {
	return ids.encode(e, "UE-S1AP-IDs", 2, true)
}

func (ids *UES1APIDs) Decode(d *per.Decoder) error {
	return ids.decode(d, "UE-S1AP-IDs", 2, true,
		func() per.Value { return new(UES1APIDPair) },
		func() per.Value { return new(MMEUES1APID) })
}

// TargetIDPresent names the live alternative of a TargetID.
type TargetIDPresent uint8

const (
	TargetIDPresentNothing TargetIDPresent = iota
	TargetIDPresentTargetENBID
	TargetIDPresentTargetRNCID
	TargetIDPresentCGI
)

// TargetID ::= CHOICE { targeteNB-ID, targetRNC-ID, cGI, ... }
type TargetID struct {
	choice
}

func (t TargetID) Present() TargetIDPresent {
	return TargetIDPresent(t.present)
}

func (t *TargetID) SetTargetENBID(id TargetENBID) {
	t.set(uint8(TargetIDPresentTargetENBID), &id)
}

func (t *TargetID) SetTargetRNCID(id TargetRNCID) {
	t.set(uint8(TargetIDPresentTargetRNCID), &id)
}

func (t *TargetID) SetCGI(cgi CGI) {
	t.set(uint8(TargetIDPresentCGI), &cgi)
}

func (t TargetID) TargetENBID() (TargetENBID, bool) {
	return alternativeOf[TargetENBID](t.choice, uint8(TargetIDPresentTargetENBID))
}

func (t TargetID) TargetRNCID() (TargetRNCID, bool) {
	return alternativeOf[TargetRNCID](t.choice, uint8(TargetIDPresentTargetRNCID))
}

func (t TargetID) CGI() (CGI, bool) {
	return alternativeOf[CGI](t.choice, uint8(TargetIDPresentCGI))
}

func (t *TargetID) Encode(e *per.Encoder) error {
	return t.encode(e, "TargetID", 3, true)
}

func (t *TargetID) Decode(d *per.Decoder) error {
	return t.decode(d, "TargetID", 3, true,
		func() per.Value { return new(TargetENBID) },
		func() per.Value { return new(TargetRNCID) },
		func() per.Value { return new(CGI) })
}
