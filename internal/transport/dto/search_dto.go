package dto

type SearchQuery struct {
	Q        string `form:"q" validate:"omitempty,max=100"`
	Type     string `form:"type" validate:"omitempty,oneof=name sector location mixed"`
	SectorID *int64 `form:"sector_id" validate:"omitempty,gt=0"`
	CityID   *int64 `form:"city_id" validate:"omitempty,gt=0"`
}

type SuggestionQuery struct {
	CityID *int64 `form:"city_id" validate:"omitempty,gt=0"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=50"`
}

type CityQuery struct {
	CountryID *int64 `form:"country_id" validate:"omitempty,gt=0"`
}

type SkillQuery struct {
	Q string `form:"q" validate:"omitempty,max=100"`
}
