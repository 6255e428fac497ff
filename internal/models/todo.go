package models

import "time"

// Todo is a to-do item owned by a single user. CreatedByBot marks
// records created through the chat assistant rather than the UI.
type Todo struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	Description  string     `json:"description"`
	Deadline     *time.Time `json:"deadline"`
	Completed    bool       `json:"completed"`
	UserID       string     `json:"userId"`
	CreatedByBot bool       `json:"createdByBot"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
