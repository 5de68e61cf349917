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

type companyContentService struct {
	media        storage.CompanyMediaRepository
	publications storage.PublicationRepository
	org          storage.OrgRepository
	contacts     storage.HRContactRepository
	tx           storage.TxManager
}

func NewCompanyContentService(
	media storage.CompanyMediaRepository,
	publications storage.PublicationRepository,
	org storage.OrgRepository,
	contacts storage.HRContactRepository,
	tx storage.TxManager,
) CompanyContentService {
	return &companyContentService{media: media, publications: publications, org: org, contacts: contacts, tx: tx}
}

// --- Media ---

func (s *companyContentService) ListMedia(ctx context.Context, companyID int64) ([]models.CompanyMedia, error) {
	items, err := s.media.List(ctx, companyID)
	return items, MapRepoError(err, "listing media")
}

func (s *companyContentService) AddMedia(ctx context.Context, companyID int64, req *dto.MediaRequest) (*models.CompanyMedia, error) {
	created, err := s.media.Create(ctx, &models.CompanyMedia{CompanyID: companyID, Kind: req.Kind, URL: req.URL, Caption: req.Caption})
	return created, MapRepoError(err, "adding media")
}

func (s *companyContentService) UpdateMedia(ctx context.Context, companyID, id int64, req *dto.MediaRequest) (*models.CompanyMedia, error) {
	updated, err := s.media.Update(ctx, &models.CompanyMedia{ID: id, CompanyID: companyID, Kind: req.Kind, URL: req.URL, Caption: req.Caption})
	return updated, MapRepoError(err, fmt.Sprintf("updating media %d", id))
}

func (s *companyContentService) DeleteMedia(ctx context.Context, companyID, id int64) error {
	return MapRepoError(s.media.Delete(ctx, companyID, id), fmt.Sprintf("deleting media %d", id))
}

// ReorderMedia requires ids to be exactly the company's media set.
func (s *companyContentService) ReorderMedia(ctx context.Context, companyID int64, ids []int64) ([]models.CompanyMedia, error) {
	var reordered []models.CompanyMedia
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.media.List(ctx, companyID)
		if err != nil {
			return err
		}
		if !sameIDSet(ids, mediaIDs(current)) {
			return fieldError("ids", "must list every media item of the company exactly once")
		}
		for i, id := range ids {
			if err := s.media.SetPosition(ctx, companyID, id, int32(i)); err != nil {
				return err
			}
		}
		reordered, err = s.media.List(ctx, companyID)
		return err
	})
	if err != nil {
		return nil, MapRepoError(err, "reordering media")
	}
	return reordered, nil
}

func mediaIDs(items []models.CompanyMedia) []int64 {
	ids := make([]int64, len(items))
	for i, m := range items {
		ids[i] = m.ID
	}
	return ids
}

// sameIDSet reports whether got is a permutation of want without duplicates.
func sameIDSet(got, want []int64) bool {
	if len(got) != len(want) {
		return false
	}
	remaining := make(map[int64]bool, len(want))
	for _, id := range want {
		remaining[id] = true
	}
	for _, id := range got {
		if !remaining[id] {
			return false
		}
		delete(remaining, id)
	}
	return len(remaining) == 0
}

// --- Publications ---

func (s *companyContentService) ListPublications(ctx context.Context, companyID int64, publishedOnly bool, page pagination.PageRequest) (pagination.PageResult[models.Publication], error) {
	items, total, err := s.publications.List(ctx, companyID, publishedOnly, page)
	if err != nil {
		return pagination.PageResult[models.Publication]{}, MapRepoError(err, "listing publications")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *companyContentService) GetPublication(ctx context.Context, companyID, id int64, publishedOnly bool) (*models.Publication, error) {
	pub, err := s.publications.Get(ctx, companyID, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching publication %d", id))
	}
	if publishedOnly && pub.PublishedAt == nil {
		return nil, fmt.Errorf("%w: publication %d", ErrNotFound, id)
	}
	return pub, nil
}

func (s *companyContentService) CreatePublication(ctx context.Context, companyID int64, req *dto.PublicationRequest) (*models.Publication, error) {
	created, err := s.publications.Create(ctx, &models.Publication{
		CompanyID: companyID, Title: strings.TrimSpace(req.Title), Body: req.Body,
	})
	return created, MapRepoError(err, "creating publication")
}

func (s *companyContentService) UpdatePublication(ctx context.Context, companyID, id int64, req *dto.PublicationRequest) (*models.Publication, error) {
	updated, err := s.publications.Update(ctx, &models.Publication{
		ID: id, CompanyID: companyID, Title: strings.TrimSpace(req.Title), Body: req.Body,
	})
	return updated, MapRepoError(err, fmt.Sprintf("updating publication %d", id))
}

func (s *companyContentService) SetPublicationPublished(ctx context.Context, companyID, id int64, published bool) (*models.Publication, error) {
	pub, err := s.publications.SetPublished(ctx, companyID, id, published)
	return pub, MapRepoError(err, fmt.Sprintf("publishing publication %d", id))
}

func (s *companyContentService) DeletePublication(ctx context.Context, companyID, id int64) error {
	return MapRepoError(s.publications.Delete(ctx, companyID, id), fmt.Sprintf("deleting publication %d", id))
}

// --- Org chart ---

// buildOrgTree nests nodes under their parents, keeping the input order among
// siblings. Nodes whose parent is missing become roots.
func buildOrgTree(nodes []models.OrgNode) []*models.OrgNode {
	byID := make(map[int64]*models.OrgNode, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		n.Children = []*models.OrgNode{}
		byID[n.ID] = n
	}
	roots := []*models.OrgNode{}
	for i := range nodes {
		n := &nodes[i]
		if n.ParentID != nil {
			if parent, ok := byID[*n.ParentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// hasCycle reports whether following parents from any node revisits a node.
func hasCycle(parents map[int64]*int64) bool {
	for start := range parents {
		steps := 0
		for cur := parents[start]; cur != nil; cur = parents[*cur] {
			if *cur == start || steps > len(parents) {
				return true
			}
			steps++
		}
	}
	return false
}

func (s *companyContentService) OrgTree(ctx context.Context, companyID int64) ([]*models.OrgNode, error) {
	nodes, err := s.org.List(ctx, companyID)
	if err != nil {
		return nil, MapRepoError(err, "listing org chart")
	}
	return buildOrgTree(nodes), nil
}

func (s *companyContentService) CreateOrgNode(ctx context.Context, companyID int64, req *dto.OrgNodeRequest) (*models.OrgNode, error) {
	if req.ParentID != nil {
		if _, err := s.org.Get(ctx, companyID, *req.ParentID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fieldError("parent_id", "unknown parent node")
			}
			return nil, MapRepoError(err, "fetching parent node")
		}
	}
	node, err := s.org.Create(ctx, &models.OrgNode{
		CompanyID: companyID, ParentID: req.ParentID, Name: strings.TrimSpace(req.Name), Title: req.Title,
	})
	return node, MapRepoError(err, "creating org node")
}

func (s *companyContentService) UpdateOrgNode(ctx context.Context, companyID, id int64, req *dto.OrgNodeRequest) (*models.OrgNode, error) {
	nodes, err := s.org.List(ctx, companyID)
	if err != nil {
		return nil, MapRepoError(err, "listing org chart")
	}
	parents := make(map[int64]*int64, len(nodes))
	for _, n := range nodes {
		parents[n.ID] = n.ParentID
	}
	if _, ok := parents[id]; !ok {
		return nil, fmt.Errorf("%w: org node %d", ErrNotFound, id)
	}
	if req.ParentID != nil {
		if _, ok := parents[*req.ParentID]; !ok {
			return nil, fieldError("parent_id", "unknown parent node")
		}
	}
	parents[id] = req.ParentID
	if hasCycle(parents) {
		return nil, fieldError("parent_id", "a node cannot be placed under itself or its descendants")
	}

	node, err := s.org.Update(ctx, &models.OrgNode{
		ID: id, CompanyID: companyID, ParentID: req.ParentID, Name: strings.TrimSpace(req.Name), Title: req.Title,
	})
	return node, MapRepoError(err, fmt.Sprintf("updating org node %d", id))
}

// DeleteOrgNode re-attaches the node's children to its parent.
func (s *companyContentService) DeleteOrgNode(ctx context.Context, companyID, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		node, err := s.org.Get(ctx, companyID, id)
		if err != nil {
			return err
		}
		if err := s.org.Reparent(ctx, companyID, node.ID, node.ParentID); err != nil {
			return err
		}
		return s.org.Delete(ctx, companyID, node.ID)
	})
	return MapRepoError(err, fmt.Sprintf("deleting org node %d", id))
}

func (s *companyContentService) ReorderOrg(ctx context.Context, companyID int64, req *dto.ReorderOrgRequest) ([]*models.OrgNode, error) {
	var tree []*models.OrgNode
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		nodes, err := s.org.List(ctx, companyID)
		if err != nil {
			return err
		}
		parents := make(map[int64]*int64, len(nodes))
		for _, n := range nodes {
			parents[n.ID] = n.ParentID
		}

		seen := make(map[int64]bool, len(req.Nodes))
		for _, p := range req.Nodes {
			if _, ok := parents[p.ID]; !ok {
				return fieldError("nodes", fmt.Sprintf("unknown node %d", p.ID))
			}
			if seen[p.ID] {
				return fieldError("nodes", fmt.Sprintf("node %d listed twice", p.ID))
			}
			seen[p.ID] = true
			if p.ParentID != nil {
				if _, ok := parents[*p.ParentID]; !ok {
					return fieldError("nodes", fmt.Sprintf("unknown parent %d", *p.ParentID))
				}
			}
		}
		for _, p := range req.Nodes {
			parents[p.ID] = p.ParentID
		}
		if hasCycle(parents) {
			return fieldError("nodes", "the new layout contains a cycle")
		}

		for _, p := range req.Nodes {
			if err := s.org.Move(ctx, companyID, p.ID, p.ParentID, p.Position); err != nil {
				return err
			}
		}
		nodes, err = s.org.List(ctx, companyID)
		if err != nil {
			return err
		}
		tree = buildOrgTree(nodes)
		return nil
	})
	if err != nil {
		return nil, MapRepoError(err, "reordering org chart")
	}
	return tree, nil
}

// --- HR contacts ---

func (s *companyContentService) ListHRContacts(ctx context.Context, companyID int64) ([]models.HRContact, error) {
	contacts, err := s.contacts.List(ctx, companyID)
	return contacts, MapRepoError(err, "listing hr contacts")
}

func (s *companyContentService) GetHRContact(ctx context.Context, companyID, id int64) (*models.HRContact, error) {
	contact, err := s.contacts.Get(ctx, companyID, id)
	return contact, MapRepoError(err, fmt.Sprintf("fetching hr contact %d", id))
}

// CreateHRContact makes the company's first contact primary.
func (s *companyContentService) CreateHRContact(ctx context.Context, companyID int64, req *dto.HRContactRequest) (*models.HRContact, error) {
	var created *models.HRContact
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		n, err := s.contacts.Count(ctx, companyID)
		if err != nil {
			return err
		}
		created, err = s.contacts.Create(ctx, &models.HRContact{
			CompanyID: companyID,
			Name:      strings.TrimSpace(req.Name),
			Email:     req.Email,
			Phone:     req.Phone,
			RoleTitle: req.RoleTitle,
			IsPrimary: n == 0,
		})
		return err
	})
	return created, MapRepoError(err, "creating hr contact")
}

func (s *companyContentService) UpdateHRContact(ctx context.Context, companyID, id int64, req *dto.HRContactRequest) (*models.HRContact, error) {
	updated, err := s.contacts.Update(ctx, &models.HRContact{
		ID: id, CompanyID: companyID, Name: strings.TrimSpace(req.Name), Email: req.Email, Phone: req.Phone, RoleTitle: req.RoleTitle,
	})
	return updated, MapRepoError(err, fmt.Sprintf("updating hr contact %d", id))
}

// DeleteHRContact promotes the oldest remaining contact when the primary goes away.
func (s *companyContentService) DeleteHRContact(ctx context.Context, companyID, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		contact, err := s.contacts.Get(ctx, companyID, id)
		if err != nil {
			return err
		}
		if err := s.contacts.Delete(ctx, companyID, id); err != nil {
			return err
		}
		if contact.IsPrimary {
			return s.contacts.PromoteOldest(ctx, companyID)
		}
		return nil
	})
	return MapRepoError(err, fmt.Sprintf("deleting hr contact %d", id))
}

func (s *companyContentService) SetPrimaryHRContact(ctx context.Context, companyID, id int64) ([]models.HRContact, error) {
	var contacts []models.HRContact
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.contacts.SetPrimary(ctx, companyID, id); err != nil {
			return err
		}
		var err error
		contacts, err = s.contacts.List(ctx, companyID)
		return err
	})
	return contacts, MapRepoError(err, fmt.Sprintf("setting primary hr contact %d", id))
}
