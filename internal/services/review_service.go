package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type reviewService struct {
	reviews  storage.ReviewRepository
	tx       storage.TxManager
	notifier Notifier
}

func NewReviewService(reviews storage.ReviewRepository, tx storage.TxManager, notifier Notifier) ReviewService {
	return &reviewService{reviews: reviews, tx: tx, notifier: notifier}
}

func (s *reviewService) page(ctx context.Context, f storage.ReviewFilter, page pagination.PageRequest) (pagination.PageResult[models.ReviewListing], error) {
	items, total, err := s.reviews.List(ctx, f, page)
	if err != nil {
		return pagination.PageResult[models.ReviewListing]{}, MapRepoError(err, "listing reviews")
	}
	return pagination.NewPageResult(items, total, page), nil
}

// ListForCompany returns approved reviews only.
func (s *reviewService) ListForCompany(ctx context.Context, companyID int64, page pagination.PageRequest) (pagination.PageResult[models.ReviewListing], error) {
	approved := models.ReviewApproved
	return s.page(ctx, storage.ReviewFilter{CompanyID: &companyID, Status: &approved}, page)
}

func (s *reviewService) Create(ctx context.Context, authorID, companyID int64, req *dto.ReviewRequest) (*models.Review, error) {
	review, err := s.reviews.Create(ctx, &models.Review{
		CompanyID: companyID,
		AuthorID:  authorID,
		Rating:    req.Rating,
		Title:     strings.TrimSpace(req.Title),
		Body:      req.Body,
		Status:    models.ReviewPending,
	})
	if errors.Is(err, storage.ErrConflict) {
		return nil, fmt.Errorf("%w: company already reviewed", ErrConflict)
	}
	return review, MapRepoError(err, "creating review")
}

func (s *reviewService) authored(ctx context.Context, authorID, id int64) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching review %d", id))
	}
	if review.AuthorID != authorID {
		return nil, fmt.Errorf("%w: review %d belongs to another user", ErrForbidden, id)
	}
	return review, nil
}

// Update sends the edited review back to moderation.
func (s *reviewService) Update(ctx context.Context, authorID, id int64, req *dto.ReviewRequest) (*models.Review, error) {
	review, err := s.authored(ctx, authorID, id)
	if err != nil {
		return nil, err
	}
	review.Rating = req.Rating
	review.Title = strings.TrimSpace(req.Title)
	review.Body = req.Body
	review.Status = models.ReviewPending
	updated, err := s.reviews.Update(ctx, review)
	return updated, MapRepoError(err, fmt.Sprintf("updating review %d", id))
}

func (s *reviewService) Delete(ctx context.Context, authorID, id int64) error {
	if _, err := s.authored(ctx, authorID, id); err != nil {
		return err
	}
	return MapRepoError(s.reviews.Delete(ctx, id), fmt.Sprintf("deleting review %d", id))
}

// ToggleVote flips the caller's helpful vote on an approved review.
func (s *reviewService) ToggleVote(ctx context.Context, userID, id int64) (*dto.VoteResponse, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching review %d", id))
	}
	if review.Status != models.ReviewApproved {
		return nil, fmt.Errorf("%w: review %d", ErrNotFound, id)
	}
	if review.AuthorID == userID {
		return nil, fmt.Errorf("%w: cannot vote on your own review", ErrForbidden)
	}

	resp := &dto.VoteResponse{}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		removed, err := s.reviews.RemoveVote(ctx, id, userID)
		if err != nil {
			return err
		}
		if !removed {
			if err := s.reviews.AddVote(ctx, id, userID); err != nil {
				return err
			}
		}
		resp.Voted = !removed
		resp.HelpfulCount, err = s.reviews.SyncHelpfulCount(ctx, id)
		return err
	})
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("toggling vote on review %d", id))
	}
	return resp, nil
}

// --- Moderation ---

func (s *reviewService) AdminList(ctx context.Context, q *dto.ReviewListQuery, page pagination.PageRequest) (pagination.PageResult[models.ReviewListing], error) {
	var f storage.ReviewFilter
	if q.Status != "" {
		st := models.ReviewStatus(q.Status)
		f.Status = &st
	}
	return s.page(ctx, f, page)
}

func (s *reviewService) moderate(ctx context.Context, id int64, status models.ReviewStatus, kind, title string) (*models.Review, error) {
	review, err := s.reviews.SetStatus(ctx, id, status)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("setting review %d %s", id, status))
	}
	s.notifier.Notify(ctx, review.AuthorID, kind, title, review.Title, map[string]any{
		"review_id":  review.ID,
		"company_id": review.CompanyID,
	})
	return review, nil
}

func (s *reviewService) Approve(ctx context.Context, id int64) (*models.Review, error) {
	return s.moderate(ctx, id, models.ReviewApproved, models.NotificationReviewApproved, "Your review was published")
}

func (s *reviewService) Reject(ctx context.Context, id int64) (*models.Review, error) {
	return s.moderate(ctx, id, models.ReviewRejected, models.NotificationReviewRejected, "Your review was rejected")
}

func (s *reviewService) AdminDelete(ctx context.Context, id int64) error {
	return MapRepoError(s.reviews.Delete(ctx, id), fmt.Sprintf("deleting review %d", id))
}
