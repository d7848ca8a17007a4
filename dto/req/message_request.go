package req

type MessageRequest struct {
	Room    uint    `json:"room" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

type MessageUpdateRequest struct {
	Content *string `json:"content"`
}
