package models

import (
	"math/rand/v2"
	"time"
)

// Memo is a sticky note on the free-form board. Content may be empty
// (a blank note waiting for input). Image is a pass-through reference
// to an uploaded file; the upload itself is handled elsewhere.
type Memo struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Color     string    `json:"color"`
	Completed bool      `json:"completed"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Board placement defaults for new memos.
const (
	DefaultMemoX      = 100
	DefaultMemoY      = 100
	DefaultMemoWidth  = 200
	DefaultMemoHeight = 200
)

// MemoColors is the sticky-note palette. New memos without an explicit
// color get a random pick from this list.
var MemoColors = []string{"#ffd700", "#ff7eb9", "#7afcff", "#feff9c", "#b4f8c8", "#e7c6ff"}

// RandomMemoColor picks a palette color for a new memo.
func RandomMemoColor() string {
	return MemoColors[rand.IntN(len(MemoColors))]
}
