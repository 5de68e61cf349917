package dto

type UpdateMeRequest struct {
	UserID int64   `json:"-"` // Set from auth context
	Name   string  `json:"name" validate:"required,max=100"`
	Email  string  `json:"email" validate:"required,email,max=255"`
	Phone  *string `json:"phone" validate:"omitempty,max=30"`
	Bio    *string `json:"bio" validate:"omitempty,max=2000"`
}

type ChangePasswordRequest struct {
	UserID               int64  `json:"-"`
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// DeleteAccountRequest confirms account deletion. Social-only accounts may omit the password.
type DeleteAccountRequest struct {
	UserID   int64  `json:"-"`
	Password string `json:"password"`
}

type UpdateStudentProfileRequest struct {
	UserID         int64   `json:"-"`
	Headline       *string `json:"headline" validate:"omitempty,max=150"`
	School         *string `json:"school" validate:"omitempty,max=150"`
	Degree         *string `json:"degree" validate:"omitempty,max=150"`
	GraduationYear *int32  `json:"graduation_year" validate:"omitempty,gte=1950,lte=2100"`
	CityID         *int64  `json:"city_id" validate:"omitempty,gt=0"`
	SkillIDs       []int64 `json:"skill_ids" validate:"omitempty,max=50,dive,gt=0"`
	LinkedInURL    *string `json:"linkedin_url" validate:"omitempty,url,max=255"`
	About          *string `json:"about" validate:"omitempty,max=5000"`
}
