package res

import "time"

type ReactionResponse struct {
	ID        uint         `json:"id"`
	Message   uint         `json:"message"`
	User      UserResponse `json:"user"`
	Emoji     string       `json:"emoji"`
	Timestamp time.Time    `json:"timestamp"`
}
