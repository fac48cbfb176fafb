package container

// Item records one IE the decoder could not honour.
type Item struct {
	ID          uint16
	Criticality Criticality
	TypeOfError TypeOfError
}

// Report collects the IEs that were not understood or missing while a
// container was decoded. Messages embed it to satisfy Container.
type Report struct {
	Items []Item
}

func (r *Report) CriticalityReport() *Report {
	return r
}

// Empty reports whether nothing was recorded.
func (r *Report) Empty() bool {
	return r == nil || len(r.Items) == 0
}

// Reset drops every recorded item.
func (r *Report) Reset() {
	r.Items = r.Items[:0]
}

func (r *Report) add(id uint16, criticality Criticality, kind TypeOfError) {
	if r == nil {
		return
	}
	r.Items = append(r.Items, Item{ID: id, Criticality: criticality, TypeOfError: kind})
}
