package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"professionals-api/internal/media"
	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type chatService struct {
	conversations storage.ConversationRepository
	messages      storage.MessageRepository
	companies     storage.CompanyRepository
	tx            storage.TxManager
	files         FileStore
	limits        UploadLimits
	notifier      Notifier
	now           func() time.Time
}

func NewChatService(
	conversations storage.ConversationRepository,
	messages storage.MessageRepository,
	companies storage.CompanyRepository,
	tx storage.TxManager,
	files FileStore,
	limits UploadLimits,
	notifier Notifier,
) ChatService {
	return &chatService{
		conversations: conversations,
		messages:      messages,
		companies:     companies,
		tx:            tx,
		files:         files,
		limits:        limits,
		notifier:      notifier,
		now:           time.Now,
	}
}

func (s *chatService) List(ctx context.Context, userID int64, page pagination.PageRequest) (pagination.PageResult[models.ConversationListing], error) {
	items, total, err := s.conversations.ListForUser(ctx, userID, page)
	if err != nil {
		return pagination.PageResult[models.ConversationListing]{}, MapRepoError(err, "listing conversations")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *chatService) Start(ctx context.Context, userID int64, req *dto.StartConversationRequest) (*models.ConversationListing, error) {
	company, err := s.companies.GetByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fieldError("company_id", "company does not exist")
		}
		return nil, MapRepoError(err, "fetching company")
	}
	if company.OwnerID == userID {
		return nil, fieldError("company_id", "cannot open a conversation with your own company")
	}
	conv, err := s.conversations.Create(ctx, &models.Conversation{
		StudentID: userID,
		CompanyID: company.ID,
		Subject:   strings.TrimSpace(req.Subject),
		Status:    models.ConversationOpen,
	})
	if err != nil {
		return nil, MapRepoError(err, "creating conversation")
	}
	listing, err := s.conversations.GetByID(ctx, conv.ID)
	return listing, MapRepoError(err, fmt.Sprintf("fetching conversation %d", conv.ID))
}

// Get returns the conversation if userID is the student or the company owner.
func (s *chatService) Get(ctx context.Context, userID, id int64) (*models.ConversationListing, error) {
	conv, err := s.conversations.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching conversation %d", id))
	}
	if conv.StudentID != userID && conv.CompanyOwnerID != userID {
		return nil, fmt.Errorf("%w: not a participant of conversation %d", ErrForbidden, id)
	}
	return conv, nil
}

func (s *chatService) SetStatus(ctx context.Context, userID, id int64, status models.ConversationStatus) (*models.Conversation, error) {
	conv, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !conv.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: conversation is %s", ErrInvalidTransition, conv.Status)
	}
	updated, err := s.conversations.SetStatus(ctx, id, status)
	return updated, MapRepoError(err, fmt.Sprintf("setting conversation %d status", id))
}

func (s *chatService) Messages(ctx context.Context, userID, id int64, page pagination.PageRequest) (pagination.PageResult[models.Message], error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return pagination.PageResult[models.Message]{}, err
	}
	items, total, err := s.messages.List(ctx, id, page)
	if err != nil {
		return pagination.PageResult[models.Message]{}, MapRepoError(err, "listing messages")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *chatService) saveAttachment(ctx context.Context, a *Attachment) (*string, error) {
	if a == nil {
		return nil, nil
	}
	if err := s.limits.check("attachment", a.Data); err != nil {
		return nil, err
	}
	ext, err := media.DetectAttachment(a.Data)
	if err != nil {
		return nil, fieldError("attachment", "unsupported file type")
	}
	key := media.NewKey("attachments", ext)
	if err := s.files.Save(ctx, key, a.Data); err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}
	return &key, nil
}

// Send appends a message to an open conversation and notifies the other participant.
func (s *chatService) Send(ctx context.Context, userID, id int64, req *dto.SendMessageRequest, attachment *Attachment) (*models.Message, error) {
	conv, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if conv.Status != models.ConversationOpen {
		return nil, fmt.Errorf("%w: conversation is %s", ErrInvalidState, conv.Status)
	}
	path, err := s.saveAttachment(ctx, attachment)
	if err != nil {
		return nil, err
	}

	var msg *models.Message
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		msg, err = s.messages.Create(ctx, &models.Message{
			ConversationID: id,
			SenderID:       userID,
			Body:           req.Body,
			AttachmentPath: path,
		})
		if err != nil {
			return err
		}
		return s.conversations.Touch(ctx, id, s.now())
	})
	if err != nil {
		removeFile(ctx, s.files, path)
		return nil, MapRepoError(err, fmt.Sprintf("sending message in conversation %d", id))
	}

	recipient, sender := conv.CompanyOwnerID, conv.StudentName
	if userID == conv.CompanyOwnerID {
		recipient, sender = conv.StudentID, conv.CompanyName
	}
	s.notifier.Notify(ctx, recipient, models.NotificationMessageReceived,
		"New message from "+sender, conv.Subject,
		map[string]any{"conversation_id": id, "message_id": msg.ID})
	return msg, nil
}

func (s *chatService) MarkRead(ctx context.Context, userID, id int64) (int64, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return 0, err
	}
	n, err := s.messages.MarkRead(ctx, id, userID)
	return n, MapRepoError(err, fmt.Sprintf("marking conversation %d read", id))
}
