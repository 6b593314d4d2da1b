package domain

// Email is a single outbound HTML message.
type Email struct {
	From        string
	To          string
	Subject     string
	HTMLContent string
}
