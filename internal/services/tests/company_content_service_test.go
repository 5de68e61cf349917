package services_test

import (
	"context"
	"testing"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentDeps struct {
	media        *mocks.MockCompanyMediaRepository
	publications *mocks.MockPublicationRepository
	org          *mocks.MockOrgRepository
	contacts     *mocks.MockHRContactRepository
}

func setupContentServiceTest() (context.Context, services.CompanyContentService, contentDeps) {
	d := contentDeps{
		media:        new(mocks.MockCompanyMediaRepository),
		publications: new(mocks.MockPublicationRepository),
		org:          new(mocks.MockOrgRepository),
		contacts:     new(mocks.MockHRContactRepository),
	}
	svc := services.NewCompanyContentService(d.media, d.publications, d.org, d.contacts, mocks.TxManager{})
	return context.Background(), svc, d
}

func TestCompanyContentService_ReorderMedia(t *testing.T) {
	current := []models.CompanyMedia{{ID: 1, CompanyID: 3}, {ID: 2, CompanyID: 3}, {ID: 3, CompanyID: 3}}

	t.Run("Positions follow the given order", func(t *testing.T) {
		ctx, svc, d := setupContentServiceTest()
		d.media.On("List", ctx, int64(3)).Return(current, nil).Twice()
		d.media.On("SetPosition", ctx, int64(3), int64(3), int32(0)).Return(nil).Once()
		d.media.On("SetPosition", ctx, int64(3), int64(1), int32(1)).Return(nil).Once()
		d.media.On("SetPosition", ctx, int64(3), int64(2), int32(2)).Return(nil).Once()

		_, err := svc.ReorderMedia(ctx, 3, []int64{3, 1, 2})

		require.NoError(t, err)
		d.media.AssertExpectations(t)
	})

	for name, ids := range map[string][]int64{
		"Missing item":   {1, 2},
		"Duplicate item": {1, 2, 2},
		"Foreign item":   {1, 2, 9},
	} {
		t.Run(name, func(t *testing.T) {
			ctx, svc, d := setupContentServiceTest()
			d.media.On("List", ctx, int64(3)).Return(current, nil).Once()

			_, err := svc.ReorderMedia(ctx, 3, ids)

			assertFieldError(t, err, "ids")
			d.media.AssertNotCalled(t, "SetPosition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCompanyContentService_OrgTree(t *testing.T) {
	ctx, svc, d := setupContentServiceTest()
	d.org.On("List", ctx, int64(3)).Return([]models.OrgNode{
		{ID: 1, CompanyID: 3, Name: "CEO"},
		{ID: 2, CompanyID: 3, Name: "CTO", ParentID: ptr(int64(1))},
		{ID: 3, CompanyID: 3, Name: "Engineer", ParentID: ptr(int64(2))},
		{ID: 4, CompanyID: 3, Name: "CFO", ParentID: ptr(int64(1))},
	}, nil).Once()

	tree, err := svc.OrgTree(ctx, 3)

	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "CEO", tree[0].Name)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "CTO", tree[0].Children[0].Name)
	assert.Equal(t, "CFO", tree[0].Children[1].Name)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "Engineer", tree[0].Children[0].Children[0].Name)
}

func TestCompanyContentService_UpdateOrgNode_RejectsCycle(t *testing.T) {
	ctx, svc, d := setupContentServiceTest()
	d.org.On("List", ctx, int64(3)).Return([]models.OrgNode{
		{ID: 1, CompanyID: 3},
		{ID: 2, CompanyID: 3, ParentID: ptr(int64(1))},
	}, nil).Once()

	_, err := svc.UpdateOrgNode(ctx, 3, 1, &dto.OrgNodeRequest{Name: "CEO", ParentID: ptr(int64(2))})

	assertFieldError(t, err, "parent_id")
	d.org.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompanyContentService_ReorderOrg(t *testing.T) {
	nodes := []models.OrgNode{
		{ID: 1, CompanyID: 3},
		{ID: 2, CompanyID: 3, ParentID: ptr(int64(1))},
		{ID: 3, CompanyID: 3, ParentID: ptr(int64(1))},
	}

	t.Run("Cycle", func(t *testing.T) {
		ctx, svc, d := setupContentServiceTest()
		d.org.On("List", ctx, int64(3)).Return(nodes, nil).Once()

		_, err := svc.ReorderOrg(ctx, 3, &dto.ReorderOrgRequest{Nodes: []dto.OrgNodePosition{
			{ID: 1, ParentID: ptr(int64(3))},
		}})

		assertFieldError(t, err, "nodes")
		d.org.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown node", func(t *testing.T) {
		ctx, svc, d := setupContentServiceTest()
		d.org.On("List", ctx, int64(3)).Return(nodes, nil).Once()

		_, err := svc.ReorderOrg(ctx, 3, &dto.ReorderOrgRequest{Nodes: []dto.OrgNodePosition{{ID: 8}}})

		assertFieldError(t, err, "nodes")
	})

	t.Run("Moves nodes", func(t *testing.T) {
		ctx, svc, d := setupContentServiceTest()
		d.org.On("List", ctx, int64(3)).Return(nodes, nil).Twice()
		d.org.On("Move", ctx, int64(3), int64(3), ptr(int64(2)), int32(0)).Return(nil).Once()

		_, err := svc.ReorderOrg(ctx, 3, &dto.ReorderOrgRequest{Nodes: []dto.OrgNodePosition{
			{ID: 3, ParentID: ptr(int64(2)), Position: 0},
		}})

		require.NoError(t, err)
		d.org.AssertExpectations(t)
	})
}

func TestCompanyContentService_DeleteOrgNode_ReattachesChildren(t *testing.T) {
	ctx, svc, d := setupContentServiceTest()
	d.org.On("Get", ctx, int64(3), int64(2)).Return(&models.OrgNode{ID: 2, CompanyID: 3, ParentID: ptr(int64(1))}, nil).Once()
	d.org.On("Reparent", ctx, int64(3), int64(2), ptr(int64(1))).Return(nil).Once()
	d.org.On("Delete", ctx, int64(3), int64(2)).Return(nil).Once()

	require.NoError(t, svc.DeleteOrgNode(ctx, 3, 2))
	d.org.AssertExpectations(t)
}

func countPrimary(contacts []models.HRContact) int {
	n := 0
	for _, c := range contacts {
		if c.IsPrimary {
			n++
		}
	}
	return n
}

func TestCompanyContentService_CreateHRContact(t *testing.T) {
	tests := []struct {
		name        string
		existing    int
		wantPrimary bool
	}{
		{name: "First contact becomes primary", existing: 0, wantPrimary: true},
		{name: "Later contacts are secondary", existing: 2, wantPrimary: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, d := setupContentServiceTest()
			d.contacts.On("Count", ctx, int64(3)).Return(tt.existing, nil).Once()
			d.contacts.On("Create", ctx, mock.MatchedBy(func(c *models.HRContact) bool {
				return c.CompanyID == 3 && c.Name == "Lina" && c.IsPrimary == tt.wantPrimary
			})).Return(&models.HRContact{ID: 7, CompanyID: 3, Name: "Lina", IsPrimary: tt.wantPrimary}, nil).Once()

			contact, err := svc.CreateHRContact(ctx, 3, &dto.HRContactRequest{Name: " Lina "})

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrimary, contact.IsPrimary)
			d.contacts.AssertExpectations(t)
		})
	}
}

func TestCompanyContentService_SetPrimaryHRContact(t *testing.T) {
	t.Run("Exactly one primary afterwards", func(t *testing.T) {
		ctx, svc, d := setupContentServiceTest()
		d.contacts.On("SetPrimary", ctx, int64(3), int64(8)).Return(nil).Once()
		d.contacts.On("List", ctx, int64(3)).Return([]models.HRContact{
			{ID: 7, CompanyID: 3},
			{ID: 8, CompanyID: 3, IsPrimary: true},
			{ID: 9, CompanyID: 3},
		}, nil).Once()

		contacts, err := svc.SetPrimaryHRContact(ctx, 3, 8)

		require.NoError(t, err)
		assert.Equal(t, 1, countPrimary(contacts))
		assert.True(t, contacts[1].IsPrimary)
	})

	t.Run("Contact of another company", func(t *testing.T) {
		ctx, svc, d := setupContentServiceTest()
		d.contacts.On("SetPrimary", ctx, int64(3), int64(40)).Return(storage.ErrNotFound).Once()

		_, err := svc.SetPrimaryHRContact(ctx, 3, 40)

		assert.ErrorIs(t, err, services.ErrNotFound)
		d.contacts.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestCompanyContentService_DeleteHRContact(t *testing.T) {
	tests := []struct {
		name    string
		primary bool
	}{
		{name: "Deleting the primary promotes the oldest", primary: true},
		{name: "Deleting a secondary leaves the primary", primary: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, d := setupContentServiceTest()
			d.contacts.On("Get", ctx, int64(3), int64(7)).Return(&models.HRContact{ID: 7, CompanyID: 3, IsPrimary: tt.primary}, nil).Once()
			d.contacts.On("Delete", ctx, int64(3), int64(7)).Return(nil).Once()
			if tt.primary {
				d.contacts.On("PromoteOldest", ctx, int64(3)).Return(nil).Once()
			}

			require.NoError(t, svc.DeleteHRContact(ctx, 3, 7))

			d.contacts.AssertExpectations(t)
			if !tt.primary {
				d.contacts.AssertNotCalled(t, "PromoteOldest", mock.Anything, mock.Anything)
			}
		})
	}
}
