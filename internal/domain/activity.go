package domain

// ActivityRecord is one prepared row of the activity log.
type ActivityRecord struct {
	RowIndex int

	Phase        Phase
	Type         string
	ActivityName string
	Owner        string
	OwnerEmail   string

	RawStatus          string
	CompletionFraction float64
	// ScheduleStatus is nil when the source has no schedule value for the row.
	ScheduleStatus *string

	OperationalStatus OperationalStatus
	// CompletionLabel is set only for completed activities.
	CompletionLabel *CompletionLabel
}

// IsCompleted reports whether the activity is operationally complete.
func (a ActivityRecord) IsCompleted() bool {
	return a.OperationalStatus == StatusCompleted
}

// LabelOr returns the completion label, or fallback when none is set.
func (a ActivityRecord) LabelOr(fallback string) string {
	if a.CompletionLabel == nil {
		return fallback
	}
	return string(*a.CompletionLabel)
}
