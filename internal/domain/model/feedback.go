package model

// Feedback is a customer review fetched from the order store.
type Feedback struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
	Score     int
}
