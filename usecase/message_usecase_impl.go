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

type MessageUsecaseImpl struct {
	*repository.MessageRepository
	ChatRoomRepository *repository.ChatRoomRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewMessageUsecase(messageRepository *repository.MessageRepository, chatRoomRepository *repository.ChatRoomRepository, validate *validator.Validate, DB *gorm.DB, log *logger.AppLogger) Crud[req.MessageRequest, req.MessageUpdateRequest, res.MessageResponse] {
	return &MessageUsecaseImpl{MessageRepository: messageRepository, ChatRoomRepository: chatRoomRepository, Validate: validate, DB: DB, Log: log}
}

func (uc *MessageUsecaseImpl) List(ctx context.Context) ([]res.MessageResponse, error) {
	var messages []entity.Message
	if err := uc.MessageRepository.FindAllWithSender(ctx, uc.DB, &messages); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to list messages")
		return nil, err
	}
	return mapMessages(messages), nil
}

func (uc *MessageUsecaseImpl) ListPage(ctx context.Context, offset, limit int) ([]res.MessageResponse, int64, error) {
	var messages []entity.Message
	count, err := uc.MessageRepository.FindPageWithSender(ctx, uc.DB, &messages, offset, limit)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to page messages")
		return nil, 0, err
	}
	return mapMessages(messages), count, nil
}

func (uc *MessageUsecaseImpl) Create(ctx context.Context, principalID uint, request *req.MessageRequest) (res.MessageResponse, error) {
	if err := wrapValidation(uc.Validate.Struct(request)); err != nil {
		return res.MessageResponse{}, err
	}
	if *request.Content == "" {
		return res.MessageResponse{}, newFieldError("content", msgBlank)
	}
	if principalID == 0 {
		return res.MessageResponse{}, newFieldError("sender", msgRequired)
	}

	exists, err := uc.ChatRoomRepository.ExistsById(ctx, uc.DB, request.Room)
	if err != nil {
		return res.MessageResponse{}, err
	}
	if !exists {
		return res.MessageResponse{}, newFieldError("room", msgInvalidPk(request.Room))
	}

	message := entity.Message{
		RoomID:   request.Room,
		SenderID: principalID,
		Content:  *request.Content,
	}
	if err := uc.MessageRepository.Save(ctx, uc.DB, &message); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to save message")
		return res.MessageResponse{}, err
	}

	uc.Log.Http.Info.Info().Uint("messageId", message.ID).Uint("roomId", message.RoomID).Msg("message created")
	return uc.Get(ctx, message.ID)
}

func (uc *MessageUsecaseImpl) Get(ctx context.Context, id uint) (res.MessageResponse, error) {
	var message entity.Message
	if err := uc.MessageRepository.FindByIdWithSender(ctx, uc.DB, &message, id); err != nil {
		return res.MessageResponse{}, err
	}
	return toMessageResponse(message), nil
}

func (uc *MessageUsecaseImpl) Update(ctx context.Context, id uint, request *req.MessageUpdateRequest, partial bool) (res.MessageResponse, error) {
	var message entity.Message
	if err := uc.MessageRepository.FindById(ctx, uc.DB, &message, id); err != nil {
		return res.MessageResponse{}, err
	}

	if !partial && request.Content == nil {
		return res.MessageResponse{}, newFieldError("content", msgRequired)
	}
	if request.Content != nil {
		if *request.Content == "" {
			return res.MessageResponse{}, newFieldError("content", msgBlank)
		}
		message.Content = *request.Content
		now := time.Now().UTC()
		message.EditedTimestamp = &now
	}

	if err := uc.MessageRepository.Update(ctx, uc.DB, &message); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("messageId", id).Msg("failed to update message")
		return res.MessageResponse{}, err
	}
	return uc.Get(ctx, id)
}

func (uc *MessageUsecaseImpl) Delete(ctx context.Context, id uint) error {
	var message entity.Message
	if err := uc.MessageRepository.FindById(ctx, uc.DB, &message, id); err != nil {
		return err
	}
	if err := uc.MessageRepository.Delete(ctx, uc.DB, &message); err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("messageId", id).Msg("failed to delete message")
		return err
	}
	uc.Log.Http.Info.Info().Uint("messageId", id).Msg("message deleted")
	return nil
}

func toMessageResponse(message entity.Message) res.MessageResponse {
	return res.MessageResponse{
		ID:   message.ID,
		Room: message.RoomID,
		Sender: res.UserResponse{
			ID:       message.Sender.ID,
			Username: message.Sender.Username,
			Email:    message.Sender.Email,
		},
		Content:         message.Content,
		Timestamp:       message.Timestamp,
		EditedTimestamp: message.EditedTimestamp,
	}
}

func mapMessages(messages []entity.Message) []res.MessageResponse {
	responses := make([]res.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toMessageResponse(message))
	}
	return responses
}
