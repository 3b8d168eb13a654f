package domain

// Contact holds how to reach the people behind a place or event.
type Contact struct {
	Name  *string
	Email *Email
	Phone *string
}
