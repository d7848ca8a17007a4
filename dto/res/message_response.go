package res

import "time"

type MessageResponse struct {
	ID              uint         `json:"id"`
	Room            uint         `json:"room"`
	Sender          UserResponse `json:"sender"`
	Content         string       `json:"content"`
	Timestamp       time.Time    `json:"timestamp"`
	EditedTimestamp *time.Time   `json:"edited_timestamp"`
}
