package per

import (
	"bytes"
	"encoding/asn1"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/free5gc/aper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BOOL represents a single test case from the JSON file
type BOOL struct {
	Input   bool   `json:"input"`
	Aligned bool   `json:"aligned"`
	Output  string `json:"output"`
}

// INT represents a single integer test case from the JSON file
type INT struct {
	Input      int64  `json:"input"`
	Lb         *int64 `json:"lb"`
	Ub         *int64 `json:"ub"`
	Extensible bool   `json:"extensible"`
	Aligned    bool   `json:"aligned"`
	Output     string `json:"output"`
}

// ENUM represents a single enumerated test case from the JSON file
type ENUM struct {
	Input      uint64 `json:"input"`
	Count      uint64 `json:"count"`
	Extensible bool   `json:"extensible"`
	Aligned    bool   `json:"aligned"`
	Output     string `json:"output"`
}

// OCTETS represents a single octet string test case from the JSON file
type OCTETS struct {
	Input      string  `json:"input"`
	Lb         *uint64 `json:"lb"`
	Ub         *uint64 `json:"ub"`
	Extensible bool    `json:"extensible"`
	Aligned    bool    `json:"aligned"`
	Output     string  `json:"output"`
}

// BITS represents a single bit string test case from the JSON file
type BITS struct {
	Input      string  `json:"input"`
	Bits       int     `json:"bits"`
	Lb         *uint64 `json:"lb"`
	Ub         *uint64 `json:"ub"`
	Extensible bool    `json:"extensible"`
	Aligned    bool    `json:"aligned"`
	Output     string  `json:"output"`
}

// STRING represents a single PrintableString test case from the JSON file
type STRING struct {
	Input      string  `json:"input"`
	Lb         *uint64 `json:"lb"`
	Ub         *uint64 `json:"ub"`
	Extensible bool    `json:"extensible"`
	Aligned    bool    `json:"aligned"`
	Output     string  `json:"output"`
}

func TestWriteBool(t *testing.T) {
	for _, tc := range load[BOOL](t, "bool.json") {
		name := strings.ToUpper(fmt.Sprintf("BOOL_VALUE_%v_ALIGNED_%v", tc.Input, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			encoder := NewEncoder(tc.Aligned)
			require.NoError(t, encoder.EncodeBoolean(tc.Input))
			assert.Equal(t, tc.Output, hex.EncodeToString(encoder.Bytes()))
		})
	}
}

func TestWriteInteger(t *testing.T) {
	for _, tc := range load[INT](t, "integer.json") {
		name := strings.ToUpper(fmt.Sprintf("INT_VALUE_%d_LB_%s_UB_%s_EXT_%v_ALIGNED_%v",
			tc.Input, dref(tc.Lb), dref(tc.Ub), tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			encoder := NewEncoder(tc.Aligned)
			require.NoError(t, encoder.EncodeInteger(tc.Input, tc.Lb, tc.Ub, tc.Extensible))
			assert.Equal(t, tc.Output, hex.EncodeToString(encoder.Bytes()))
		})
	}
}

func TestWriteEnumerated(t *testing.T) {
	for _, tc := range load[ENUM](t, "enumerated.json") {
		name := strings.ToUpper(fmt.Sprintf("ENUM_VALUE_%d_COUNT_%d_EXT_%v_ALIGNED_%v",
			tc.Input, tc.Count, tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			encoder := NewEncoder(tc.Aligned)
			require.NoError(t, encoder.EncodeEnumerated(tc.Input, tc.Count, tc.Extensible))
			assert.Equal(t, tc.Output, hex.EncodeToString(encoder.Bytes()))
		})
	}
}

func TestWriteOctetString(t *testing.T) {
	for _, tc := range load[OCTETS](t, "octetstring.json") {
		name := strings.ToUpper(fmt.Sprintf("OCTETS_VALUE_%s_LB_%s_UB_%s_EXT_%v_ALIGNED_%v",
			tc.Input, dref(tc.Lb), dref(tc.Ub), tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			value, err := hex.DecodeString(tc.Input)
			require.NoError(t, err)

			encoder := NewEncoder(tc.Aligned)
			encoder.SetSizeExtensions(tc.Extensible)
			require.NoError(t, encoder.EncodeOctetString(value, tc.Lb, tc.Ub, tc.Extensible))
			assert.Equal(t, tc.Output, hex.EncodeToString(encoder.Bytes()))
		})
	}
}

func TestWriteBitString(t *testing.T) {
	for _, tc := range load[BITS](t, "bitstring.json") {
		name := strings.ToUpper(fmt.Sprintf("BITS_VALUE_%s_%d_LB_%s_UB_%s_EXT_%v_ALIGNED_%v",
			tc.Input, tc.Bits, dref(tc.Lb), dref(tc.Ub), tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			value, err := hex.DecodeString(tc.Input)
			require.NoError(t, err)

			encoder := NewEncoder(tc.Aligned)
			bitString := &asn1.BitString{Bytes: value, BitLength: tc.Bits}
			encoder.SetSizeExtensions(tc.Extensible)
			require.NoError(t, encoder.EncodeBitString(bitString, tc.Lb, tc.Ub, tc.Extensible))
			assert.Equal(t, tc.Output, hex.EncodeToString(encoder.Bytes()))
		})
	}
}

func TestWritePrintableString(t *testing.T) {
	for _, tc := range load[STRING](t, "printablestring.json") {
		name := strings.ToUpper(fmt.Sprintf("STRING_VALUE_%s_LB_%s_UB_%s_EXT_%v_ALIGNED_%v",
			tc.Input, dref(tc.Lb), dref(tc.Ub), tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			encoder := NewEncoder(tc.Aligned)
			encoder.SetSizeExtensions(tc.Extensible)
			require.NoError(t, encoder.EncodePrintableString(tc.Input, tc.Lb, tc.Ub, tc.Extensible))
			assert.Equal(t, tc.Output, hex.EncodeToString(encoder.Bytes()))
		})
	}
}

func TestConstrainedWholeNumberRange(t *testing.T) {
	for _, aligned := range []bool{true, false} {
		encoder := NewEncoder(aligned)
		assert.ErrorIs(t, encoder.EncodeConstrainedWholeNumber(0, 15, 16), ErrOutOfRange)
		assert.ErrorIs(t, encoder.EncodeConstrainedWholeNumber(5, 15, 4), ErrOutOfRange)
		assert.ErrorIs(t, encoder.EncodeInteger(-1, Bound[int64](0), Bound[int64](255), false), ErrOutOfRange)
		assert.ErrorIs(t, encoder.EncodeEnumerated(3, 3, false), ErrOutOfRange)
		assert.Error(t, encoder.EncodeConstrainedWholeNumber(10, 5, 7))
		assert.Equal(t, uint64(0), encoder.NumBits())
	}
}

func TestSizeConstraint(t *testing.T) {
	encoder := NewEncoder(true)
	err := encoder.EncodeOctetString([]byte{1, 2, 3}, Bound[uint64](4), Bound[uint64](4), false)
	assert.ErrorIs(t, err, ErrSizeConstraint)

	err = encoder.EncodeOctetString(make([]byte, 9), Bound[uint64](0), Bound[uint64](8), false)
	assert.ErrorIs(t, err, ErrSizeConstraint)

	bitString := &asn1.BitString{Bytes: make([]byte, 21), BitLength: 161}
	err = encoder.EncodeBitString(bitString, Bound[uint64](1), Bound[uint64](160), false)
	assert.ErrorIs(t, err, ErrSizeConstraint)

	err = encoder.EncodePrintableString("", Bound[uint64](1), Bound[uint64](150), true)
	assert.ErrorIs(t, err, ErrSizeConstraint)

	err = EncodeSequenceOf[small](encoder, nil, Bound[uint64](1), Bound[uint64](6), true)
	assert.ErrorIs(t, err, ErrSizeConstraint)

	empty := &asn1.BitString{}
	err = encoder.EncodeBitString(empty, Bound[uint64](1), Bound[uint64](160), true)
	assert.ErrorIs(t, err, ErrSizeConstraint)
	assert.Equal(t, uint64(0), encoder.NumBits())

	extended := NewEncoder(true)
	extended.SetSizeExtensions(true)
	err = extended.EncodePrintableString("", Bound[uint64](1), Bound[uint64](150), true)
	assert.NoError(t, err, "a length outside the root is an extension value once enabled")
	assert.Equal(t, "8000", hex.EncodeToString(extended.Bytes()))

	err = encoder.EncodePrintableString("", Bound[uint64](1), Bound[uint64](150), false)
	assert.ErrorIs(t, err, ErrSizeConstraint)

	err = encoder.EncodePrintableString("a_b", nil, nil, false)
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	short := &asn1.BitString{Bytes: []byte{0xFF}, BitLength: 16}
	err = encoder.EncodeBitString(short, Bound[uint64](16), Bound[uint64](16), false)
	assert.ErrorIs(t, err, ErrSizeConstraint)
}

func TestLengthFollowedByAlignment(t *testing.T) {
	// The length sits right after the preceding bit, the content is aligned
	encoder := NewEncoder(true)
	require.NoError(t, encoder.EncodeBoolean(true))
	require.NoError(t, encoder.EncodeOctetString([]byte{0x01, 0x02}, Bound[uint64](0), Bound[uint64](8), false))
	assert.Equal(t, "900102", hex.EncodeToString(encoder.Bytes()))

	// An empty string has no content to align
	encoder = NewEncoder(true)
	require.NoError(t, encoder.EncodeBoolean(true))
	require.NoError(t, encoder.EncodeOctetString(nil, Bound[uint64](0), Bound[uint64](8), false))
	require.NoError(t, encoder.EncodeBoolean(true))
	assert.Equal(t, "84", hex.EncodeToString(encoder.Bytes()))
}

func TestLengthDeterminant(t *testing.T) {
	test := func(n uint64, expected string, covered uint64, more bool) {
		t.Run(fmt.Sprintf("LENGTH_%d", n), func(t *testing.T) {
			encoder := NewEncoder(true)
			length, fragmented, err := encoder.EncodeLengthDeterminant(n, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, covered, length)
			assert.Equal(t, more, fragmented)
			assert.Equal(t, expected, hex.EncodeToString(encoder.Bytes()))

			decoder := NewDecoder(encoder.Bytes(), true)
			length, fragmented, err = decoder.DecodeLengthDeterminant(nil, nil)
			require.NoError(t, err)
			assert.Equal(t, covered, length)
			assert.Equal(t, more, fragmented)
		})
	}
	test(0, "00", 0, false)
	test(127, "7f", 127, false)
	test(128, "8080", 128, false)
	test(16383, "bfff", 16383, false)
	test(16384, "c1", 16384, true)
	test(40000, "c2", 32768, true)
	test(49152, "c3", 49152, true)
	test(100000, "c4", 65536, true)
}

func TestNormallySmall(t *testing.T) {
	encoder := NewEncoder(true)
	require.NoError(t, encoder.EncodeNormallySmallNonNegativeWholeNumber(5))
	assert.Equal(t, "0a", hex.EncodeToString(encoder.Bytes()))

	encoder = NewEncoder(true)
	require.NoError(t, encoder.EncodeNormallySmallNonNegativeWholeNumber(64))
	// one bit, then a semi-constrained number aligned: 01 40
	assert.Equal(t, "800140", hex.EncodeToString(encoder.Bytes()))

	encoder = NewEncoder(false)
	_, _, err := encoder.EncodeNormallySmallLength(0)
	assert.ErrorIs(t, err, ErrSizeConstraint)
	_, _, err = encoder.EncodeNormallySmallLength(64)
	require.NoError(t, err)
	assert.Equal(t, "7e", hex.EncodeToString(encoder.Bytes()))
}

func TestOctetStringFragments(t *testing.T) {
	test := func(size int, headers ...[]byte) {
		t.Run(fmt.Sprintf("OCTETS_%d", size), func(t *testing.T) {
			value := bytes.Repeat([]byte{0x5A}, size)
			encoder := NewEncoder(true)
			require.NoError(t, encoder.EncodeOctetString(value, nil, nil, false))

			var (
				encoded  = encoder.Bytes()
				offset   int
				expected int
			)
			for i, header := range headers {
				assert.Equal(t, header, encoded[offset:offset+len(header)], "header %d", i)
				offset += len(header)
				switch {
				case header[0]&0xC0 == 0xC0:
					expected = int(header[0]&0x3F) * FRAGMENT_SIZE
				case header[0]&0x80 == 0x80:
					expected = int(header[0]&0x3F)<<8 | int(header[1])
				default:
					expected = int(header[0])
				}
				offset += expected
			}
			assert.Equal(t, len(encoded), offset)

			decoder := NewDecoder(encoded, true)
			decoded, err := decoder.DecodeOctetString(nil, nil, false)
			require.NoError(t, err)
			assert.Equal(t, value, decoded)
		})
	}
	test(16384, []byte{0xC1}, []byte{0x00})
	test(16584, []byte{0xC1}, []byte{0x80, 0xC8})
	test(65536, []byte{0xC4}, []byte{0x00})
	test(70000, []byte{0xC4}, []byte{0x91, 0x70})
	test(81920, []byte{0xC4}, []byte{0xC1}, []byte{0x00})
}

func TestSequencePreamble(t *testing.T) {
	encoder := NewEncoder(true)
	require.NoError(t, encoder.EncodeSequencePreamble(true, false, true, false, true))
	assert.Equal(t, "50", hex.EncodeToString(encoder.Bytes()))

	assert.Error(t, NewEncoder(true).EncodeSequencePreamble(false, true))
}

func TestChoiceIndex(t *testing.T) {
	encoder := NewEncoder(true)
	require.NoError(t, encoder.EncodeChoiceIndex(2, 3, true))
	assert.Equal(t, "40", hex.EncodeToString(encoder.Bytes()))

	encoder = NewEncoder(true)
	require.NoError(t, encoder.EncodeChoiceIndex(4, 3, true))
	// extension bit, then normally small 1
	assert.Equal(t, "81", hex.EncodeToString(encoder.Bytes()))

	encoder = NewEncoder(true)
	require.NoError(t, encoder.EncodeChoiceIndex(0, 1, false))
	assert.Nil(t, encoder.Bytes())

	assert.ErrorIs(t, NewEncoder(true).EncodeChoiceIndex(3, 3, false), ErrUnknownChoice)
}

type null struct{}

func (n *null) Encode(e *Encoder) error { return e.EncodeNull() }
func (n *null) Decode(d *Decoder) error { return d.DecodeNull() }

type small struct {
	value int64
}

func (s *small) Encode(e *Encoder) error {
	return e.EncodeInteger(s.value, Bound[int64](0), Bound[int64](255), false)
}

func (s *small) Decode(d *Decoder) (err error) {
	s.value, err = d.DecodeInteger(Bound[int64](0), Bound[int64](255), false)
	return
}

func TestOpenType(t *testing.T) {
	encoder := NewEncoder(true)
	require.NoError(t, encoder.EncodeOpenType(&null{}))
	assert.Equal(t, "0100", hex.EncodeToString(encoder.Bytes()))

	encoder = NewEncoder(true)
	require.NoError(t, encoder.EncodeBoolean(true))
	require.NoError(t, encoder.EncodeOpenType(&small{value: 7}))
	assert.Equal(t, "800107", hex.EncodeToString(encoder.Bytes()))

	decoder := NewDecoder(encoder.Bytes(), true)
	_, err := decoder.DecodeBoolean()
	require.NoError(t, err)
	var value small
	require.NoError(t, decoder.DecodeOpenTypeInto(&value))
	assert.Equal(t, int64(7), value.value)
}

func TestSequenceOf(t *testing.T) {
	items := []small{{1}, {2}, {3}}
	encoder := NewEncoder(true)
	require.NoError(t, EncodeSequenceOf(encoder, items, Bound[uint64](1), Bound[uint64](8), false))
	// count 3 as 3 bits (range 8), then three aligned octets
	assert.Equal(t, "40010203", hex.EncodeToString(encoder.Bytes()))

	decoder := NewDecoder(encoder.Bytes(), true)
	decoded, err := DecodeSequenceOf[small](decoder, Bound[uint64](1), Bound[uint64](8), false)
	require.NoError(t, err)
	assert.Equal(t, items, decoded)

	err = EncodeSequenceOf(NewEncoder(true), []small{}, Bound[uint64](1), Bound[uint64](8), false)
	assert.ErrorIs(t, err, ErrSizeConstraint)

	fixed := NewEncoder(true)
	require.NoError(t, EncodeSequenceOf(fixed, items, Bound[uint64](3), Bound[uint64](3), false))
	assert.Equal(t, "010203", hex.EncodeToString(fixed.Bytes()))
}

// TestInteroperability compares the encoding of a protocol IE header with
// the one produced by github.com/free5gc/aper.
func TestInteroperability(t *testing.T) {
	type header struct {
		ID          int64           `aper:"valueLB:0,valueUB:65535"`
		Criticality aper.Enumerated `aper:"valueLB:0,valueUB:2"`
	}
	expected, err := aper.Marshal(header{ID: 42, Criticality: 1})
	require.NoError(t, err)

	encoder := NewEncoder(true)
	require.NoError(t, encoder.EncodeConstrainedWholeNumber(0, 65535, 42))
	require.NoError(t, encoder.EncodeEnumerated(1, 3, false))
	assert.Equal(t, expected, encoder.Bytes())
	assert.Equal(t, "002a40", hex.EncodeToString(encoder.Bytes()))

	var decoded header
	require.NoError(t, aper.Unmarshal(encoder.Bytes(), &decoded))
	assert.Equal(t, int64(42), decoded.ID)
	assert.Equal(t, aper.Enumerated(1), decoded.Criticality)
}
