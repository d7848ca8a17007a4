package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"chat-backend/config/logger"
	"chat-backend/dto/req"
	"chat-backend/dto/res"
	"chat-backend/entity"
	"chat-backend/repository"
)

type ReplyUsecaseImpl struct {
	*repository.ReplyRepository
	MessageRepository *repository.MessageRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewReplyUsecase(replyRepository *repository.ReplyRepository, messageRepository *repository.MessageRepository, validate *validator.Validate, DB *gorm.DB, log *logger.AppLogger) Crud[req.ReplyRequest, req.ReplyUpdateRequest, res.ReplyResponse] {
	return &ReplyUsecaseImpl{ReplyRepository: replyRepository, MessageRepository: messageRepository, Validate: validate, DB: DB, Log: log}
}

func (uc *ReplyUsecaseImpl) List(ctx context.Context) ([]res.ReplyResponse, error) {
	var replies []entity.Reply
	if err := uc.ReplyRepository.FindAllWithUser(ctx, uc.DB, &replies); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to list replies")
		return nil, err
	}
	responses := make([]res.ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		responses = append(responses, toReplyResponse(reply))
	}
	return responses, nil
}

// ListPage is unused; the replies collection is never paginated.
func (uc *ReplyUsecaseImpl) ListPage(ctx context.Context, offset, limit int) ([]res.ReplyResponse, int64, error) {
	responses, err := uc.List(ctx)
	return responses, int64(len(responses)), err
}

func (uc *ReplyUsecaseImpl) Create(ctx context.Context, principalID uint, request *req.ReplyRequest) (res.ReplyResponse, error) {
	if err := wrapValidation(uc.Validate.Struct(request)); err != nil {
		return res.ReplyResponse{}, err
	}
	if *request.Content == "" {
		return res.ReplyResponse{}, newFieldError("content", msgBlank)
	}
	if principalID == 0 {
		return res.ReplyResponse{}, newFieldError("user", msgRequired)
	}

	for _, ref := range []struct {
		field string
		id    uint
	}{{"message", request.Message}, {"reply_to", request.ReplyTo}} {
		exists, err := uc.MessageRepository.ExistsById(ctx, uc.DB, ref.id)
		if err != nil {
			return res.ReplyResponse{}, err
		}
		if !exists {
			return res.ReplyResponse{}, newFieldError(ref.field, msgInvalidPk(ref.id))
		}
	}

	reply := entity.Reply{
		MessageID: request.Message,
		ReplyToID: request.ReplyTo,
		UserID:    principalID,
		Content:   *request.Content,
	}
	if err := uc.ReplyRepository.Save(ctx, uc.DB, &reply); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to save reply")
		return res.ReplyResponse{}, err
	}

	uc.Log.Http.Info.Info().Uint("replyId", reply.ID).Uint("messageId", reply.MessageID).Msg("reply created")
	return uc.Get(ctx, reply.ID)
}

func (uc *ReplyUsecaseImpl) Get(ctx context.Context, id uint) (res.ReplyResponse, error) {
	var reply entity.Reply
	if err := uc.ReplyRepository.FindByIdWithUser(ctx, uc.DB, &reply, id); err != nil {
		return res.ReplyResponse{}, err
	}
	return toReplyResponse(reply), nil
}

func (uc *ReplyUsecaseImpl) Update(ctx context.Context, id uint, request *req.ReplyUpdateRequest, partial bool) (res.ReplyResponse, error) {
	var reply entity.Reply
	if err := uc.ReplyRepository.FindById(ctx, uc.DB, &reply, id); err != nil {
		return res.ReplyResponse{}, err
	}

	if !partial && request.Content == nil {
		return res.ReplyResponse{}, newFieldError("content", msgRequired)
	}
	if request.Content != nil {
		if *request.Content == "" {
			return res.ReplyResponse{}, newFieldError("content", msgBlank)
		}
		reply.Content = *request.Content
		now := time.Now().UTC()
		reply.EditedTimestamp = &now
	}

	if err := uc.ReplyRepository.Update(ctx, uc.DB, &reply); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("replyId", id).Msg("failed to update reply")
		return res.ReplyResponse{}, err
	}
	return uc.Get(ctx, id)
}

func (uc *ReplyUsecaseImpl) Delete(ctx context.Context, id uint) error {
	var reply entity.Reply
	if err := uc.ReplyRepository.FindById(ctx, uc.DB, &reply, id); err != nil {
		return err
	}
	if err := uc.ReplyRepository.Delete(ctx, uc.DB, &reply); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("replyId", id).Msg("failed to delete reply")
		return err
	}
	uc.Log.Http.Info.Info().Uint("replyId", id).Msg("reply deleted")
	return nil
}

func toReplyResponse(reply entity.Reply) res.ReplyResponse {
	return res.ReplyResponse{
		ID:      reply.ID,
		Message: reply.MessageID,
		ReplyTo: reply.ReplyToID,
		User: res.UserResponse{
			ID:       reply.User.ID,
			Username: reply.User.Username,
			Email:    reply.User.Email,
		},
		Content:         reply.Content,
		Timestamp:       reply.Timestamp,
		EditedTimestamp: reply.EditedTimestamp,
	}
}
