package per

// 11.2 Open type fields
// |- The value is encoded on its own (with the same variant) and the resulting
// |  |  octets are written as an unconstrained octet string.
// |- 11.1.3 An empty encoding is replaced by the single octet 0x00.

// EncodeOpenType writes v as an open type field.
func (e *Encoder) EncodeOpenType(v Value) error {
	sub := NewEncoder(e.aligned)
	sub.sizeExtensions = e.sizeExtensions
	if err := v.Encode(sub); err != nil {
		return err
	}
	return e.EncodeOpenTypeBytes(sub.Bytes())
}

// EncodeOpenTypeBytes writes an already encoded value as an open type field.
func (e *Encoder) EncodeOpenTypeBytes(data []byte) error {
	if len(data) == 0 {
		data = []byte{0x00}
	}
	return e.EncodeOctetStringFragments(data, nil, nil)
}

// DecodeOpenType returns the octets of an open type field without
// interpreting them.
func (d *Decoder) DecodeOpenType() ([]byte, error) {
	return d.DecodeOctetStringFragments(nil, nil)
}

// DecodeOpenTypeInto decodes an open type field into v. Octets v leaves
// unread are padding and ignored.
func (d *Decoder) DecodeOpenTypeInto(v Value) error {
	data, err := d.DecodeOpenType()
	if err != nil {
		return err
	}
	return v.Decode(d.Nested(data))
}
