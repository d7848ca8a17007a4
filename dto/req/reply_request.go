package req

type ReplyRequest struct {
	Message uint    `json:"message" validate:"required"`
	ReplyTo uint    `json:"reply_to" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

type ReplyUpdateRequest struct {
	Content *string `json:"content"`
}
