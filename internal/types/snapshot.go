package types

// Snapshot is the full transportable state of the store: every record plus
// the resume, if one has been saved. It is the unit of persistence, sync
// encoding, and file backup; imports replace it wholesale (last-write-wins
// at the granularity of the entire store, no merge).
type Snapshot struct {
	Jobs   []JobApplication `json:"jobs"`
	Resume *ResumeData      `json:"resume,omitempty"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// aliasing the store's internal slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Jobs: make([]JobApplication, len(s.Jobs))}
	for i, j := range s.Jobs {
		out.Jobs[i] = cloneJob(j)
	}
	if s.Resume != nil {
		r := *s.Resume
		out.Resume = &r
	}
	return out
}

// Clone returns a deep copy of a single record.
func (j JobApplication) Clone() JobApplication {
	return cloneJob(j)
}

func cloneJob(j JobApplication) JobApplication {
	c := j
	if j.Interviews != nil {
		c.Interviews = make([]Interview, len(j.Interviews))
		for i, iv := range j.Interviews {
			c.Interviews[i] = cloneInterview(iv)
		}
	}
	if j.Analysis != nil {
		a := *j.Analysis
		a.Strengths = append([]string(nil), j.Analysis.Strengths...)
		a.Gaps = append([]string(nil), j.Analysis.Gaps...)
		c.Analysis = &a
	}
	return c
}

// Clone returns a deep copy of an interview round.
func (iv Interview) Clone() Interview {
	return cloneInterview(iv)
}

func cloneInterview(iv Interview) Interview {
	c := iv
	if iv.PreTodos != nil {
		c.PreTodos = append([]TodoItem(nil), iv.PreTodos...)
	}
	if iv.PostTodos != nil {
		c.PostTodos = append([]TodoItem(nil), iv.PostTodos...)
	}
	return c
}
