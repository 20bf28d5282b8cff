// Package domain holds the webhook payload and the ports the handler drives
package domain

// Update is the subset of a Telegram update the bot reads
// swagger:model
type Update struct {
	UpdateID int64    `json:"update_id" example:"10000"`
	Message  *Message `json:"message,omitempty"`
}

// Message is an inbound chat message
type Message struct {
	Text string `json:"text" example:"1. A1B2C3D4E5F6G7H8I9"`
	Chat Chat   `json:"chat"`
	From *User  `json:"from" validate:"required"`
}

// Chat is where the reply goes
type Chat struct {
	ID int64 `json:"id" validate:"required" example:"123456789"`
}

// User is who sent the message, the daily state is keyed by it
type User struct {
	ID int64 `json:"id" validate:"required" example:"123456789"`
}
