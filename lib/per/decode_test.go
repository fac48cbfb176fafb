package per

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decoder(t *testing.T, output string, aligned bool) *Decoder {
	t.Helper()
	data, err := hex.DecodeString(output)
	require.NoError(t, err, "decode hex %q", output)
	return NewDecoder(data, aligned)
}

func TestReadBool(t *testing.T) {
	for _, tc := range load[BOOL](t, "bool.json") {
		name := strings.ToUpper(fmt.Sprintf("BOOL_VALUE_%v_ALIGNED_%v", tc.Input, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			result, err := decoder(t, tc.Output, tc.Aligned).DecodeBoolean()
			require.NoError(t, err)
			assert.Equal(t, tc.Input, result)
		})
	}
}

func TestReadInteger(t *testing.T) {
	for _, tc := range load[INT](t, "integer.json") {
		name := strings.ToUpper(fmt.Sprintf("INT_VALUE_%d_LB_%s_UB_%s_EXT_%v_ALIGNED_%v",
			tc.Input, dref(tc.Lb), dref(tc.Ub), tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			d := decoder(t, tc.Output, tc.Aligned)
			result, err := d.DecodeInteger(tc.Lb, tc.Ub, tc.Extensible)
			require.NoError(t, err)
			assert.Equal(t, tc.Input, result)
			assert.Less(t, d.Remaining(), uint64(8))
		})
	}
}

func TestReadEnumerated(t *testing.T) {
	for _, tc := range load[ENUM](t, "enumerated.json") {
		name := strings.ToUpper(fmt.Sprintf("ENUM_VALUE_%d_COUNT_%d_EXT_%v_ALIGNED_%v",
			tc.Input, tc.Count, tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			result, err := decoder(t, tc.Output, tc.Aligned).DecodeEnumerated(tc.Count, tc.Extensible)
			require.NoError(t, err)
			assert.Equal(t, tc.Input, result)
		})
	}
}

func TestReadOctetString(t *testing.T) {
	for _, tc := range load[OCTETS](t, "octetstring.json") {
		name := strings.ToUpper(fmt.Sprintf("OCTETS_VALUE_%s_LB_%s_UB_%s_EXT_%v_ALIGNED_%v",
			tc.Input, dref(tc.Lb), dref(tc.Ub), tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			d := decoder(t, tc.Output, tc.Aligned)
			result, err := d.DecodeOctetString(tc.Lb, tc.Ub, tc.Extensible)
			require.NoError(t, err)
			assert.Equal(t, tc.Input, hex.EncodeToString(result))
			assert.Less(t, d.Remaining(), uint64(8))
		})
	}
}

func TestReadBitString(t *testing.T) {
	for _, tc := range load[BITS](t, "bitstring.json") {
		name := strings.ToUpper(fmt.Sprintf("BITS_VALUE_%s_%d_LB_%s_UB_%s_EXT_%v_ALIGNED_%v",
			tc.Input, tc.Bits, dref(tc.Lb), dref(tc.Ub), tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			result, err := decoder(t, tc.Output, tc.Aligned).DecodeBitString(tc.Lb, tc.Ub, tc.Extensible)
			require.NoError(t, err)
			assert.Equal(t, tc.Bits, result.BitLength)
			assert.Equal(t, tc.Input, hex.EncodeToString(result.Bytes))
		})
	}
}

func TestReadPrintableString(t *testing.T) {
	for _, tc := range load[STRING](t, "printablestring.json") {
		name := strings.ToUpper(fmt.Sprintf("STRING_VALUE_%s_LB_%s_UB_%s_EXT_%v_ALIGNED_%v",
			tc.Input, dref(tc.Lb), dref(tc.Ub), tc.Extensible, tc.Aligned))
		t.Run(name, func(t *testing.T) {
			result, err := decoder(t, tc.Output, tc.Aligned).DecodePrintableString(tc.Lb, tc.Ub, tc.Extensible)
			require.NoError(t, err)
			assert.Equal(t, tc.Input, result)
		})
	}
}

func TestReadOutOfRange(t *testing.T) {
	// 0..5 takes three bits, 111 is 7
	_, err := decoder(t, "e0", true).DecodeConstrainedWholeNumber(0, 5)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = decoder(t, "e0", true).DecodeEnumerated(5, false)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// SIZE(1..6) count 8
	_, err = DecodeSequenceOf[small](decoder(t, "e0", true), Bound[uint64](1), Bound[uint64](6), false)
	assert.ErrorIs(t, err, ErrSizeConstraint)

	// 0..2 choice index 3
	_, _, err = decoder(t, "c0", true).DecodeChoiceIndex(3, false)
	assert.ErrorIs(t, err, ErrUnknownChoice)

	// Non-printable octet
	_, err = decoder(t, "015f", true).DecodePrintableString(nil, nil, false)
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestReadTruncated(t *testing.T) {
	test := func(description, output string, decode func(d *Decoder) error) {
		t.Run(description, func(t *testing.T) {
			assert.ErrorIs(t, decode(decoder(t, output, true)), ErrInsufficientData)
		})
	}
	test("empty boolean", "", func(d *Decoder) error {
		_, err := d.DecodeBoolean()
		return err
	})
	test("two octet number", "00", func(d *Decoder) error {
		_, err := d.DecodeConstrainedWholeNumber(0, 65535)
		return err
	})
	test("octet string content", "0401", func(d *Decoder) error {
		_, err := d.DecodeOctetString(nil, nil, false)
		return err
	})
	test("second fragment", "c1", func(d *Decoder) error {
		_, err := d.DecodeOctetString(nil, nil, false)
		return err
	})
	test("open type", "05000000", func(d *Decoder) error {
		_, err := d.DecodeOpenType()
		return err
	})
	test("printable string", "036162", func(d *Decoder) error {
		_, err := d.DecodePrintableString(nil, nil, false)
		return err
	})
}

func TestReadInvalidFragment(t *testing.T) {
	_, _, err := decoder(t, "c5", true).DecodeUnconstrainedLength()
	assert.Error(t, err)

	_, _, err = decoder(t, "c0", true).DecodeUnconstrainedLength()
	assert.Error(t, err)

	// Whole numbers never span more than eight octets
	_, err = decoder(t, "09000000000000000000", true).DecodeUnconstrainedWholeNumber()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReadSequence(t *testing.T) {
	encoder := NewEncoder(true)
	require.NoError(t, encoder.EncodeSequencePreamble(true, true))
	require.NoError(t, encoder.EncodeExtensionAdditions(nil, &small{value: 7}))
	require.NoError(t, encoder.EncodeBoolean(true))
	assert.Equal(t, "8140010780", hex.EncodeToString(encoder.Bytes()))

	d := NewDecoder(encoder.Bytes(), true)
	extended, optionals, err := d.DecodeSequencePreamble(true, 0)
	require.NoError(t, err)
	assert.True(t, extended)
	assert.Empty(t, optionals)
	require.NoError(t, d.SkipExtensionAdditions())
	last, err := d.DecodeBoolean()
	require.NoError(t, err)
	assert.True(t, last)

	d = decoder(t, "50", true)
	extended, optionals, err = d.DecodeSequencePreamble(true, 3)
	require.NoError(t, err)
	assert.False(t, extended)
	assert.Equal(t, []bool{true, false, true}, optionals)
}

func TestReadChoiceIndex(t *testing.T) {
	index, extended, err := decoder(t, "40", true).DecodeChoiceIndex(3, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), index)
	assert.False(t, extended)

	index, extended, err = decoder(t, "81", true).DecodeChoiceIndex(3, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), index)
	assert.True(t, extended)
}

func TestRoundTripVariants(t *testing.T) {
	value := &small{value: 200}
	for _, aligned := range []bool{true, false} {
		data, err := Marshal(value, aligned)
		require.NoError(t, err)

		var decoded small
		require.NoError(t, Unmarshal(data, &decoded, aligned))
		assert.Equal(t, int64(200), decoded.value)
	}
}
