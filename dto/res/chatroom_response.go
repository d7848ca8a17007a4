package res

type ChatRoomResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	IsGroupChat bool           `json:"is_group_chat"`
	Users       []UserResponse `json:"users"`
}
