package services_test

import (
	"context"
	"testing"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatDeps struct {
	conversations *mocks.MockConversationRepository
	messages      *mocks.MockMessageRepository
	companies     *mocks.MockCompanyRepository
	files         *mocks.MockFileStore
	notifier      *mocks.MockNotifier
}

func setupChatServiceTest() (context.Context, services.ChatService, chatDeps) {
	d := chatDeps{
		conversations: new(mocks.MockConversationRepository),
		messages:      new(mocks.MockMessageRepository),
		companies:     new(mocks.MockCompanyRepository),
		files:         new(mocks.MockFileStore),
		notifier:      new(mocks.MockNotifier),
	}
	svc := services.NewChatService(d.conversations, d.messages, d.companies, mocks.TxManager{}, d.files,
		services.UploadLimits{MaxBytes: 8}, d.notifier)
	return context.Background(), svc, d
}

func conversation(status models.ConversationStatus) *models.ConversationListing {
	return &models.ConversationListing{
		Conversation:   models.Conversation{ID: 9, StudentID: 11, CompanyID: 3, Subject: "Internship", Status: status},
		CompanyName:    "Acme",
		CompanyOwnerID: 21,
		StudentName:    "Ada",
	}
}

func TestChatService_Start(t *testing.T) {
	t.Run("Own company", func(t *testing.T) {
		ctx, svc, d := setupChatServiceTest()
		d.companies.On("GetByID", ctx, int64(3)).Return(&models.Company{ID: 3, OwnerID: 21}, nil).Once()

		_, err := svc.Start(ctx, 21, &dto.StartConversationRequest{CompanyID: 3, Subject: "Hi"})

		assertFieldError(t, err, "company_id")
		d.conversations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Opens a conversation", func(t *testing.T) {
		ctx, svc, d := setupChatServiceTest()
		d.companies.On("GetByID", ctx, int64(3)).Return(&models.Company{ID: 3, OwnerID: 21}, nil).Once()
		d.conversations.On("Create", ctx, mock.MatchedBy(func(c *models.Conversation) bool {
			return c.StudentID == 11 && c.CompanyID == 3 && c.Status == models.ConversationOpen && c.Subject == "Internship"
		})).Return(&models.Conversation{ID: 9}, nil).Once()
		d.conversations.On("GetByID", ctx, int64(9)).Return(conversation(models.ConversationOpen), nil).Once()

		conv, err := svc.Start(ctx, 11, &dto.StartConversationRequest{CompanyID: 3, Subject: " Internship "})

		require.NoError(t, err)
		assert.Equal(t, int64(9), conv.ID)
	})
}

func TestChatService_Get_NonParticipant(t *testing.T) {
	ctx, svc, d := setupChatServiceTest()
	d.conversations.On("GetByID", ctx, int64(9)).Return(conversation(models.ConversationOpen), nil).Once()

	_, err := svc.Get(ctx, 99, 9)

	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestChatService_Send(t *testing.T) {
	t.Run("Closed conversation", func(t *testing.T) {
		ctx, svc, d := setupChatServiceTest()
		d.conversations.On("GetByID", ctx, int64(9)).Return(conversation(models.ConversationClosed), nil).Once()

		_, err := svc.Send(ctx, 11, 9, &dto.SendMessageRequest{Body: "Hello"}, nil)

		assert.ErrorIs(t, err, services.ErrInvalidState)
		d.messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Attachment too large", func(t *testing.T) {
		ctx, svc, d := setupChatServiceTest()
		d.conversations.On("GetByID", ctx, int64(9)).Return(conversation(models.ConversationOpen), nil).Once()

		_, err := svc.Send(ctx, 11, 9, &dto.SendMessageRequest{Body: "CV"}, &services.Attachment{Data: []byte("0123456789")})

		assertFieldError(t, err, "attachment")
		d.files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Company owner reply notifies the student", func(t *testing.T) {
		ctx, svc, d := setupChatServiceTest()
		d.conversations.On("GetByID", ctx, int64(9)).Return(conversation(models.ConversationOpen), nil).Once()
		d.messages.On("Create", ctx, mock.MatchedBy(func(m *models.Message) bool {
			return m.ConversationID == 9 && m.SenderID == 21 && m.Body == "Welcome" && m.AttachmentPath == nil
		})).Return(&models.Message{ID: 100, ConversationID: 9, SenderID: 21, Body: "Welcome"}, nil).Once()
		d.conversations.On("Touch", ctx, int64(9), mock.AnythingOfType("time.Time")).Return(nil).Once()
		d.notifier.On("Notify", ctx, int64(11), models.NotificationMessageReceived, "New message from Acme", "Internship", mock.Anything).Return().Once()

		msg, err := svc.Send(ctx, 21, 9, &dto.SendMessageRequest{Body: "Welcome"}, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(100), msg.ID)
		d.conversations.AssertExpectations(t)
		d.notifier.AssertExpectations(t)
	})
}

func TestChatService_SetStatus(t *testing.T) {
	t.Run("Archived is final", func(t *testing.T) {
		ctx, svc, d := setupChatServiceTest()
		d.conversations.On("GetByID", ctx, int64(9)).Return(conversation(models.ConversationArchived), nil).Once()

		_, err := svc.SetStatus(ctx, 11, 9, models.ConversationOpen)

		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	t.Run("Open to closed", func(t *testing.T) {
		ctx, svc, d := setupChatServiceTest()
		d.conversations.On("GetByID", ctx, int64(9)).Return(conversation(models.ConversationOpen), nil).Once()
		d.conversations.On("SetStatus", ctx, int64(9), models.ConversationClosed).
			Return(&models.Conversation{ID: 9, Status: models.ConversationClosed}, nil).Once()

		conv, err := svc.SetStatus(ctx, 21, 9, models.ConversationClosed)

		require.NoError(t, err)
		assert.Equal(t, models.ConversationClosed, conv.Status)
	})
}
