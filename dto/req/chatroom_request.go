package req

// Pointer fields distinguish an omitted field from an explicit zero
// value: is_group_chat must be supplied even though the schema carries a
// default, and a present-but-blank name reports a blank error rather
// than a missing one.
type ChatRoomRequest struct {
	Name        *string `json:"name" validate:"required,max=255"`
	IsGroupChat *bool   `json:"is_group_chat" validate:"required"`
}

type ChatRoomUpdateRequest struct {
	Name        *string `json:"name"`
	IsGroupChat *bool   `json:"is_group_chat"`
}
