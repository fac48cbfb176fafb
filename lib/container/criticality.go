package container

import (
	"fmt"

	"github.com/thebagchi/s1ap-go/lib/per"
)

// Criticality ::= ENUMERATED { reject, ignore, notify }
type Criticality uint8

const (
	Reject Criticality = iota
	Ignore
	Notify
)

func (c Criticality) String() string {
	switch c {
	case Reject:
		return "reject"
	case Ignore:
		return "ignore"
	case Notify:
		return "notify"
	}
	return fmt.Sprintf("criticality(%d)", uint8(c))
}

func (c Criticality) Encode(e *per.Encoder) error {
	return e.EncodeEnumerated(uint64(c), 3, false)
}

func (c *Criticality) Decode(d *per.Decoder) error {
	value, err := d.DecodeEnumerated(3, false)
	if err != nil {
		return err
	}
	*c = Criticality(value)
	return nil
}

// Presence ::= ENUMERATED { optional, conditional, mandatory }
type Presence uint8

const (
	Optional Presence = iota
	Conditional
	Mandatory
)

func (p Presence) String() string {
	switch p {
	case Optional:
		return "optional"
	case Conditional:
		return "conditional"
	case Mandatory:
		return "mandatory"
	}
	return fmt.Sprintf("presence(%d)", uint8(p))
}

// TypeOfError ::= ENUMERATED { not-understood, missing, ... }
type TypeOfError uint8

const (
	NotUnderstood TypeOfError = iota
	Missing
)

func (t TypeOfError) String() string {
	switch t {
	case NotUnderstood:
		return "not-understood"
	case Missing:
		return "missing"
	}
	return fmt.Sprintf("type-of-error(%d)", uint8(t))
}

func (t TypeOfError) Encode(e *per.Encoder) error {
	return e.EncodeEnumerated(uint64(t), 2, true)
}

func (t *TypeOfError) Decode(d *per.Decoder) error {
	value, err := d.DecodeEnumerated(2, true)
	if err != nil {
		return err
	}
	*t = TypeOfError(value)
	return nil
}
