package models

import "math"

// Progress is the derived adherence state of a medication list.
type Progress struct {
	Taken   int `json:"taken"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// ComputeProgress derives Progress from the given list. Percent is
// round(100*taken/total), 0 when the list is empty.
func ComputeProgress(meds []Medication) Progress {
	p := Progress{Total: len(meds)}
	for _, m := range meds {
		if m.Taken() {
			p.Taken++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Taken) / float64(p.Total) * 100))
	}
	return p
}
