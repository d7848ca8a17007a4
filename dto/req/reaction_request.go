package req

type ReactionRequest struct {
	Message uint    `json:"message" validate:"required"`
	Emoji   *string `json:"emoji" validate:"required,max=50"`
}

type ReactionUpdateRequest struct {
	Emoji *string `json:"emoji"`
}
