package domain

// Activity records when something happened and, if known, who did it.
type Activity struct {
	At TimestampMs
	By *Email
}

// NewActivity captures the current instant for the given actor.
func NewActivity(by *Email) Activity {
	return Activity{At: NowMs(), By: by}
}

// ActivityLog is an Activity enriched with free-form context and comment,
// used for audit trails such as review status changes.
type ActivityLog struct {
	Activity Activity
	Context  *string
	Comment  *string
}
