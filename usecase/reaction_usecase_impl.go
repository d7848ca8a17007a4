package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"chat-backend/config/logger"
	"chat-backend/dto/req"
	"chat-backend/dto/res"
	"chat-backend/entity"
	"chat-backend/repository"
)

type ReactionUsecaseImpl struct {
	*repository.ReactionRepository
	MessageRepository *repository.MessageRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewReactionUsecase(reactionRepository *repository.ReactionRepository, messageRepository *repository.MessageRepository, validate *validator.Validate, DB *gorm.DB, log *logger.AppLogger) Crud[req.ReactionRequest, req.ReactionUpdateRequest, res.ReactionResponse] {
	return &ReactionUsecaseImpl{ReactionRepository: reactionRepository, MessageRepository: messageRepository, Validate: validate, DB: DB, Log: log}
}

func (uc *ReactionUsecaseImpl) List(ctx context.Context) ([]res.ReactionResponse, error) {
	var reactions []entity.Reaction
	if err := uc.ReactionRepository.FindAllWithUser(ctx, uc.DB, &reactions); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to list reactions")
		return nil, err
	}
	responses := make([]res.ReactionResponse, 0, len(reactions))
	for _, reaction := range reactions {
		responses = append(responses, toReactionResponse(reaction))
	}
	return responses, nil
}

// ListPage is unused; the reactions collection is never paginated.
func (uc *ReactionUsecaseImpl) ListPage(ctx context.Context, offset, limit int) ([]res.ReactionResponse, int64, error) {
	responses, err := uc.List(ctx)
	return responses, int64(len(responses)), err
}

func (uc *ReactionUsecaseImpl) Create(ctx context.Context, principalID uint, request *req.ReactionRequest) (res.ReactionResponse, error) {
	if err := wrapValidation(uc.Validate.Struct(request)); err != nil {
		return res.ReactionResponse{}, err
	}
	if *request.Emoji == "" {
		return res.ReactionResponse{}, newFieldError("emoji", msgBlank)
	}
	if principalID == 0 {
		return res.ReactionResponse{}, newFieldError("user", msgRequired)
	}

	exists, err := uc.MessageRepository.ExistsById(ctx, uc.DB, request.Message)
	if err != nil {
		return res.ReactionResponse{}, err
	}
	if !exists {
		return res.ReactionResponse{}, newFieldError("message", msgInvalidPk(request.Message))
	}

	reaction := entity.Reaction{
		MessageID: request.Message,
		UserID:    principalID,
		Emoji:     *request.Emoji,
	}
	if err := uc.ReactionRepository.Save(ctx, uc.DB, &reaction); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to save reaction")
		return res.ReactionResponse{}, err
	}

	uc.Log.Http.Info.Info().Uint("reactionId", reaction.ID).Uint("messageId", reaction.MessageID).Msg("reaction created")
	return uc.Get(ctx, reaction.ID)
}

func (uc *ReactionUsecaseImpl) Get(ctx context.Context, id uint) (res.ReactionResponse, error) {
	var reaction entity.Reaction
	if err := uc.ReactionRepository.FindByIdWithUser(ctx, uc.DB, &reaction, id); err != nil {
		return res.ReactionResponse{}, err
	}
	return toReactionResponse(reaction), nil
}

func (uc *ReactionUsecaseImpl) Update(ctx context.Context, id uint, request *req.ReactionUpdateRequest, partial bool) (res.ReactionResponse, error) {
	var reaction entity.Reaction
	if err := uc.ReactionRepository.FindById(ctx, uc.DB, &reaction, id); err != nil {
		return res.ReactionResponse{}, err
	}

	if !partial && request.Emoji == nil {
		return res.ReactionResponse{}, newFieldError("emoji", msgRequired)
	}
	if request.Emoji != nil {
		if *request.Emoji == "" {
			return res.ReactionResponse{}, newFieldError("emoji", msgBlank)
		}
		if utf8.RuneCountInString(*request.Emoji) > 50 {
			return res.ReactionResponse{}, newFieldError("emoji", msgMaxLength("50"))
		}
		reaction.Emoji = *request.Emoji
	}

	if err := uc.ReactionRepository.Update(ctx, uc.DB, &reaction); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("reactionId", id).Msg("failed to update reaction")
		return res.ReactionResponse{}, err
	}
	return uc.Get(ctx, id)
}

func (uc *ReactionUsecaseImpl) Delete(ctx context.Context, id uint) error {
	var reaction entity.Reaction
	if err := uc.ReactionRepository.FindById(ctx, uc.DB, &reaction, id); err != nil {
		return err
	}
	if err := uc.ReactionRepository.Delete(ctx, uc.DB, &reaction); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("reactionId", id).Msg("failed to delete reaction")
		return err
	}
	uc.Log.Http.Info.Info().Uint("reactionId", id).Msg("reaction deleted")
	return nil
}

func toReactionResponse(reaction entity.Reaction) res.ReactionResponse {
	return res.ReactionResponse{
		ID:      reaction.ID,
		Message: reaction.MessageID,
		User: res.UserResponse{
			ID:       reaction.User.ID,
			Username: reaction.User.Username,
			Email:    reaction.User.Email,
		},
		Emoji:     reaction.Emoji,
		Timestamp: reaction.Timestamp,
	}
}
