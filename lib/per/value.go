package per

// Value is implemented by every type that knows its own PER encoding.
type Value interface {
	Encode(e *Encoder) error
	Decode(d *Decoder) error
}

// Bound returns a pointer to v, for passing constraint bounds inline.
func Bound[T int64 | uint64](v T) *T {
	return &v
}

// Marshal encodes v into a fresh buffer.
func Marshal(v Value, aligned bool) ([]byte, error) {
	e := NewEncoder(aligned)
	if err := v.Encode(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes data into v. Trailing padding is ignored.
func Unmarshal(data []byte, v Value, aligned bool) error {
	return v.Decode(NewDecoder(data, aligned))
}
