package models

import "time"

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactPayload struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty"`
	Message string `json:"message" validate:"required,min=10"`
}

func (p ContactPayload) Build(now time.Time) ContactSubmission {
	return ContactSubmission{
		ID:        NewID("contact", now),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Message:   p.Message,
		Status:    "new",
		CreatedAt: now,
	}
}
