package report

import "github.com/alexanderramin/dmaicboard/internal/domain"

// StatusMapping pairs a raw status label with the operational statuses it
// was classified into.
type StatusMapping struct {
	RawStatus string                     `json:"raw_status" yaml:"raw_status"`
	Count     int                        `json:"count" yaml:"count"`
	Mapped    []domain.OperationalStatus `json:"mapped" yaml:"mapped"`
}

// StatusMappings lists every distinct raw status in first-seen order. A
// raw label can map to more than one operational status when its rows are
// classified by percentage.
func StatusMappings(records []domain.ActivityRecord) []StatusMapping {
	idx := make(map[string]int)
	out := []StatusMapping{}
	for _, r := range records {
		i, ok := idx[r.RawStatus]
		if !ok {
			i = len(out)
			idx[r.RawStatus] = i
			out = append(out, StatusMapping{RawStatus: r.RawStatus})
		}
		out[i].Count++
		if !containsStatus(out[i].Mapped, r.OperationalStatus) {
			out[i].Mapped = append(out[i].Mapped, r.OperationalStatus)
		}
	}
	return out
}

func containsStatus(list []domain.OperationalStatus, s domain.OperationalStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
