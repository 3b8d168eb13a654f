package domain

// TagFrequency counts how often a tag occurs across current place revisions.
type TagFrequency struct {
	Tag   string
	Count uint64
}
