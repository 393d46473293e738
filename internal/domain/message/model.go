package message

// Message is a contact form submission. Timestamp is Unix milliseconds.
type Message struct {
	ID        string `json:"id"`
	Codename  string `json:"codename"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
	Read      bool   `json:"read"`
}

// CreateRequest defines contact form inputs.
type CreateRequest struct {
	Codename string `json:"codename"`
	Email    string `json:"email"`
	Content  string `json:"content"`
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	Success   bool   `json:"success"`
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}
