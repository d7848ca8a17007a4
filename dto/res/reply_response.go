package res

import "time"

type ReplyResponse struct {
	ID              uint         `json:"id"`
	Message         uint         `json:"message"`
	ReplyTo         uint         `json:"reply_to"`
	User            UserResponse `json:"user"`
	Content         string       `json:"content"`
	Timestamp       time.Time    `json:"timestamp"`
	EditedTimestamp *time.Time   `json:"edited_timestamp"`
}
