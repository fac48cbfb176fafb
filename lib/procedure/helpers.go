package procedure

import (
	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/s1ap"
)

// CauseString renders a cause as "group: value", or "unknown" when absent.
func CauseString(cause *s1ap.Cause) string {
	if cause == nil || cause.Present() == s1ap.CausePresentNothing {
		return "unknown"
	}
	return cause.String()
}

// UEIDs returns copies of the UE S1AP ids a message carries. Ids recorded as
// missing in the message report are left nil.
func UEIDs(m s1ap.Message) (*s1ap.MMEUES1APID, *s1ap.ENBUES1APID) {
	missing := make(map[uint16]bool)
	if report := m.CriticalityReport(); report != nil {
		for _, item := range report.Items {
			if item.TypeOfError == container.Missing {
				missing[item.ID] = true
			}
		}
	}

	var (
		mme *s1ap.MMEUES1APID
		enb *s1ap.ENBUES1APID
	)
	for _, field := range m.Fields() {
		if missing[field.ID] {
			continue
		}
		switch value := field.Value.(type) {
		case *s1ap.MMEUES1APID:
			id := *value
			mme = &id
		case *s1ap.ENBUES1APID:
			id := *value
			enb = &id
		}
	}
	return mme, enb
}
