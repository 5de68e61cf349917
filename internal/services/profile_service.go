package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"professionals-api/internal/media"
	"professionals-api/internal/models"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type profileService struct {
	users    storage.UserRepository
	profiles storage.StudentProfileRepository
	refs     storage.ReferenceRepository
	files    FileStore
	limits   UploadLimits
}

func NewProfileService(
	users storage.UserRepository,
	profiles storage.StudentProfileRepository,
	refs storage.ReferenceRepository,
	files FileStore,
	limits UploadLimits,
) ProfileService {
	return &profileService{users: users, profiles: profiles, refs: refs, files: files, limits: limits}
}

func (s *profileService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	return user, MapRepoError(err, "fetching profile")
}

func (s *profileService) Update(ctx context.Context, req *dto.UpdateMeRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, MapRepoError(err, "fetching profile")
	}
	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.TrimSpace(req.Email)
	user.Phone = req.Phone
	user.Bio = req.Bio
	updated, err := s.users.Update(ctx, user)
	return updated, MapRepoError(err, "updating profile")
}

func (s *profileService) UploadAvatar(ctx context.Context, userID int64, data []byte) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "fetching profile")
	}
	key, err := saveImage(ctx, s.files, s.limits, "avatar", "avatars", media.AvatarSpec, data)
	if err != nil {
		return nil, err
	}
	updated, err := s.users.SetAvatar(ctx, userID, key)
	if err != nil {
		removeFile(ctx, s.files, &key)
		return nil, MapRepoError(err, "saving avatar")
	}
	removeFile(ctx, s.files, user.AvatarPath)
	return updated, nil
}

func (s *profileService) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return MapRepoError(err, "fetching profile")
	}
	if !checkPassword(user, req.CurrentPassword) {
		return fieldError("current_password", "current password is incorrect")
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	return MapRepoError(s.users.SetPassword(ctx, user.ID, hash), "changing password")
}

// Delete removes the account. Accounts with a password must confirm it.
func (s *profileService) Delete(ctx context.Context, req *dto.DeleteAccountRequest) error {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return MapRepoError(err, "fetching profile")
	}
	if user.PasswordHash != nil && !checkPassword(user, req.Password) {
		return fieldError("password", "password is incorrect")
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return MapRepoError(err, "deleting account")
	}
	removeFile(ctx, s.files, user.AvatarPath)
	return nil
}

func (s *profileService) GetStudentProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return &models.StudentProfile{UserID: userID, SkillIDs: []int64{}}, nil
	}
	return profile, MapRepoError(err, "fetching student profile")
}

func (s *profileService) UpdateStudentProfile(ctx context.Context, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	skills := uniqueIDs(req.SkillIDs)
	if err := checkReferences(ctx, s.refs, nil, req.CityID, skills); err != nil {
		return nil, err
	}
	profile, err := s.profiles.Upsert(ctx, &models.StudentProfile{
		UserID:         req.UserID,
		Headline:       req.Headline,
		School:         req.School,
		Degree:         req.Degree,
		GraduationYear: req.GraduationYear,
		CityID:         req.CityID,
		SkillIDs:       skills,
		LinkedInURL:    req.LinkedInURL,
		About:          req.About,
	})
	return profile, MapRepoError(err, "updating student profile")
}

func (s *profileService) UploadCV(ctx context.Context, userID int64, data []byte) (*models.StudentProfile, error) {
	if err := s.limits.check("cv", data); err != nil {
		return nil, err
	}
	if _, err := media.ValidateCV(data, s.limits.MaxCVPages); err != nil {
		switch {
		case errors.Is(err, media.ErrTooManyPages):
			return nil, fieldError("cv", fmt.Sprintf("must have at most %d pages", s.limits.MaxCVPages))
		default:
			return nil, fieldError("cv", "must be a PDF document")
		}
	}

	// Earlier CVs stay on disk: submitted applications still point at them.
	key := media.NewKey("cvs", ".pdf")
	if err := s.files.Save(ctx, key, data); err != nil {
		return nil, fmt.Errorf("failed to store cv: %w", err)
	}
	profile, err := s.profiles.SetCV(ctx, userID, key)
	if err != nil {
		removeFile(ctx, s.files, &key)
		return nil, MapRepoError(err, "saving cv")
	}
	return profile, nil
}
