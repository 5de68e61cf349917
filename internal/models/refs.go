package models

import (
	"fmt"
	"strconv"
)

// EntityKind tags the target of a polymorphic reference.
type EntityKind string

const (
	KindCompany  EntityKind = "company"
	KindJobOffer EntityKind = "job_offer"
	KindReview   EntityKind = "review"
	KindUser     EntityKind = "user"
)

// ParseEntityKind accepts the kinds usable for bookmarks and view tracking.
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case KindCompany, KindJobOffer:
		return EntityKind(s), nil
	}
	return "", fmt.Errorf("unsupported entity type %q", s)
}

// ParseReportableKind accepts every kind a report can point at.
func ParseReportableKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case KindCompany, KindJobOffer, KindReview, KindUser:
		return EntityKind(s), nil
	}
	return "", fmt.Errorf("unsupported reportable type %q", s)
}

// EntityRef is a (kind, id) pair pointing at a company or a job offer.
// Construct it with NewEntityRef so the kind is always valid.
type EntityRef struct {
	Kind EntityKind `json:"type"`
	ID   int64      `json:"id"`
}

// NewEntityRef validates kind and id.
func NewEntityRef(kind string, id int64) (EntityRef, error) {
	k, err := ParseEntityKind(kind)
	if err != nil {
		return EntityRef{}, err
	}
	if id <= 0 {
		return EntityRef{}, fmt.Errorf("invalid %s id %d", k, id)
	}
	return EntityRef{Kind: k, ID: id}, nil
}

// Key renders the reference as "kind:id", used for cache keys.
func (r EntityRef) Key() string {
	return string(r.Kind) + ":" + strconv.FormatInt(r.ID, 10)
}

func (r EntityRef) String() string {
	return r.Key()
}
