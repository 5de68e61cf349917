package postgres

import (
	"context"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

const conversationColumns = `id, student_id, company_id, subject, status, last_message_at, created_at, updated_at`

// unread_count is computed for $1, the viewing user.
const conversationListingColumns = `cv.id, cv.student_id, cv.company_id, cv.subject, cv.status, cv.last_message_at,
	cv.created_at, cv.updated_at, c.name AS company_name, c.owner_id AS company_owner_id, u.name AS student_name,
	(SELECT COUNT(*) FROM messages m WHERE m.conversation_id = cv.id AND m.sender_id <> $1 AND m.read_at IS NULL)
		AS unread_count`

const conversationListingFrom = `FROM conversations cv
	JOIN companies c ON c.id = cv.company_id
	JOIN users u ON u.id = cv.student_id`

// ConversationRepo implements storage.ConversationRepository.
type ConversationRepo struct {
	base
}

func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{base{pool}}
}

var _ storage.ConversationRepository = (*ConversationRepo)(nil)

func (r *ConversationRepo) Create(ctx context.Context, cv *models.Conversation) (*models.Conversation, error) {
	return one[models.Conversation](ctx, r.q(ctx), "create conversation",
		`INSERT INTO conversations (student_id, company_id, subject, status) VALUES ($1, $2, $3, 'open')
		 RETURNING `+conversationColumns,
		cv.StudentID, cv.CompanyID, cv.Subject)
}

// GetByID loads the conversation; unread_count covers messages from both sides.
func (r *ConversationRepo) GetByID(ctx context.Context, id int64) (*models.ConversationListing, error) {
	return one[models.ConversationListing](ctx, r.q(ctx), "get conversation",
		`SELECT `+conversationListingColumns+` `+conversationListingFrom+` WHERE cv.id = $2`, int64(0), id)
}

// ListForUser returns conversations where userID is the starter or owns the company.
func (r *ConversationRepo) ListForUser(ctx context.Context, userID int64, page pagination.PageRequest) ([]models.ConversationListing, int, error) {
	w := &where{}
	w.add("(cv.student_id = ? OR c.owner_id = ?)", userID)
	return listPage[models.ConversationListing](ctx, r.q(ctx), conversationListingColumns, conversationListingFrom, w,
		"COALESCE(cv.last_message_at, cv.created_at) DESC, cv.id DESC", page, "list conversations")
}

func (r *ConversationRepo) SetStatus(ctx context.Context, id int64, status models.ConversationStatus) (*models.Conversation, error) {
	return one[models.Conversation](ctx, r.q(ctx), "set conversation status",
		`UPDATE conversations SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING `+conversationColumns, id, status)
}

func (r *ConversationRepo) Touch(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE conversations SET last_message_at = $2, updated_at = NOW() WHERE id = $1`, id, at)
	return requireRow(tag, err, "touch conversation")
}

const messageColumns = `id, conversation_id, sender_id, body, attachment_path, read_at, created_at`

// MessageRepo implements storage.MessageRepository.
type MessageRepo struct {
	base
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{base{pool}}
}

var _ storage.MessageRepository = (*MessageRepo)(nil)

func (r *MessageRepo) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	return one[models.Message](ctx, r.q(ctx), "create message",
		`INSERT INTO messages (conversation_id, sender_id, body, attachment_path) VALUES ($1, $2, $3, $4)
		 RETURNING `+messageColumns,
		m.ConversationID, m.SenderID, m.Body, m.AttachmentPath)
}

// List pages through a conversation oldest first.
func (r *MessageRepo) List(ctx context.Context, conversationID int64, page pagination.PageRequest) ([]models.Message, int, error) {
	w := &where{}
	w.add("conversation_id = ?", conversationID)
	return listPage[models.Message](ctx, r.q(ctx), messageColumns, "FROM messages", w, "created_at, id", page, "list messages")
}

func (r *MessageRepo) MarkRead(ctx context.Context, conversationID, readerID int64) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE messages SET read_at = NOW() WHERE conversation_id = $1 AND sender_id <> $2 AND read_at IS NULL`,
		conversationID, readerID)
	if err != nil {
		return 0, mapError(err, "mark messages read")
	}
	return tag.RowsAffected(), nil
}
