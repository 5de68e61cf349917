package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"golang.org/x/sync/errgroup"
)

const (
	viewDedupeWindow   = time.Hour
	recommendedOffers  = 6
	dashboardTrending  = 10
	dashboardViewsDays = 30
)

// AnalyticsRepos groups the read models the dashboards aggregate over.
type AnalyticsRepos struct {
	Analytics     storage.AnalyticsRepository
	Entities      storage.EntityRepository
	Companies     storage.CompanyRepository
	Offers        storage.JobOfferRepository
	Applications  storage.ApplicationRepository
	Bookmarks     storage.BookmarkRepository
	Notifications storage.NotificationRepository
	Profiles      storage.StudentProfileRepository
}

type analyticsService struct {
	repos    AnalyticsRepos
	views    ViewDeduper
	trending SearchCache
	now      func() time.Time
}

func NewAnalyticsService(repos AnalyticsRepos, views ViewDeduper, trending SearchCache) AnalyticsService {
	return &analyticsService{repos: repos, views: views, trending: trending, now: time.Now}
}

// since returns midnight of the first day covered by a window of days ending today.
func since(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1))
}

// TrackView records one view per viewer and target per hour. Viewers are
// identified by user id when authenticated, by IP otherwise.
func (s *analyticsService) TrackView(ctx context.Context, req *dto.TrackViewRequest, viewerID *int64, ip string) (bool, error) {
	ref, err := models.NewEntityRef(req.ViewableType, req.ViewableID)
	if err != nil {
		return false, fieldError("viewable_type", err.Error())
	}
	ok, err := s.repos.Entities.Visible(ctx, ref.Kind, ref.ID)
	if err != nil {
		return false, MapRepoError(err, "checking view target")
	}
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}

	viewer := "ip:" + ip
	if viewerID != nil {
		viewer = "user:" + strconv.FormatInt(*viewerID, 10)
	}
	first, err := s.views.FirstView(ctx, ref.Key(), viewer, viewDedupeWindow)
	if err != nil {
		// Redis down: count the view rather than drop it.
		log.Printf("AnalyticsService: Error checking view dedupe for %s: %v", ref, err)
		first = true
	}
	if !first {
		return false, nil
	}
	if err := s.repos.Analytics.RecordView(ctx, ref, viewerID, ip); err != nil {
		return false, MapRepoError(err, "recording view")
	}
	return true, nil
}

func (s *analyticsService) CompanyAnalytics(ctx context.Context, companyID int64, period models.Period) (*dto.CompanyAnalyticsResponse, error) {
	from := since(s.now(), period.Days())
	a := s.repos.Analytics
	var profile, offers, apps, bookmarks []models.DailyCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { profile, err = a.ProfileViewsPerDay(gctx, companyID, from); return })
	g.Go(func() (err error) { offers, err = a.OfferViewsPerDay(gctx, companyID, from); return })
	g.Go(func() (err error) { apps, err = a.ApplicationsPerDay(gctx, companyID, from); return })
	g.Go(func() (err error) { bookmarks, err = a.BookmarksPerDay(gctx, companyID, from); return })
	if err := g.Wait(); err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("computing analytics of company %d", companyID))
	}

	return &dto.CompanyAnalyticsResponse{
		Period:       period,
		ProfileViews: dto.NewSeries(profile),
		OfferViews:   dto.NewSeries(offers),
		Applications: dto.NewSeries(apps),
		Bookmarks:    dto.NewSeries(bookmarks),
	}, nil
}

func (s *analyticsService) CompanyDashboard(ctx context.Context, companyID int64) (*dto.CompanyDashboardResponse, error) {
	resp := &dto.CompanyDashboardResponse{}
	from := since(s.now(), dashboardViewsDays)
	a := s.repos.Analytics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { resp.Company, err = s.repos.Companies.GetByID(gctx, companyID); return })
	g.Go(func() (err error) { resp.OffersByStatus, err = a.CountOffersByStatus(gctx, companyID); return })
	g.Go(func() (err error) {
		resp.ApplicationsByState, err = s.repos.Applications.CountByStatus(gctx, storage.ApplicationFilter{CompanyID: &companyID})
		return
	})
	g.Go(func() error {
		days, err := a.ProfileViewsPerDay(gctx, companyID, from)
		if err != nil {
			return err
		}
		resp.ViewsLast30Days = dto.NewSeries(days).Total
		return nil
	})
	g.Go(func() error {
		stats, err := a.CompanyStats(gctx, companyID)
		if err != nil {
			return err
		}
		resp.RatingAverage, resp.ReviewsCount = stats.RatingAverage, stats.ReviewsCount
		return nil
	})
	g.Go(func() (err error) { resp.UnreadConversations, err = a.UnreadConversations(gctx, companyID); return })
	if err := g.Wait(); err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("building dashboard of company %d", companyID))
	}
	return resp, nil
}

// MeDashboard returns the unread count plus the block matching role.
func (s *analyticsService) MeDashboard(ctx context.Context, userID int64, role models.Role) (*dto.MeDashboardResponse, error) {
	resp := &dto.MeDashboardResponse{Role: role}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { resp.UnreadNotifications, err = s.repos.Notifications.CountUnread(gctx, userID); return })

	switch role {
	case models.RoleStudent:
		g.Go(func() (err error) { resp.Student, err = s.studentDashboard(gctx, userID); return })
	case models.RoleCompany:
		g.Go(func() error {
			company, err := s.repos.Companies.GetByOwner(gctx, userID)
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			resp.Company, err = s.CompanyDashboard(gctx, company.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("building dashboard of user %d", userID))
	}
	if resp.Student != nil {
		resp.Student.UnreadNotifications = resp.UnreadNotifications
	}
	return resp, nil
}

func (s *analyticsService) studentDashboard(ctx context.Context, userID int64) (*dto.StudentDashboardResponse, error) {
	resp := &dto.StudentDashboardResponse{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.ApplicationsByStatus, err = s.repos.Applications.CountByStatus(gctx, storage.ApplicationFilter{StudentID: &userID})
		return
	})
	g.Go(func() (err error) { resp.Bookmarks, err = s.repos.Bookmarks.Count(gctx, userID); return })
	g.Go(func() error {
		var cityID *int64
		var skills []int64
		profile, err := s.repos.Profiles.Get(gctx, userID)
		switch {
		case err == nil:
			cityID, skills = profile.CityID, profile.SkillIDs
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
		resp.RecommendedOffers, err = s.repos.Offers.Recommended(gctx, cityID, skills, recommendedOffers)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *analyticsService) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	counts, err := s.repos.Analytics.PlatformCounts(ctx)
	if err != nil {
		return nil, MapRepoError(err, "counting platform totals")
	}
	terms, err := s.trending.TopSearches(ctx, dashboardTrending)
	if err != nil {
		log.Printf("AnalyticsService: Error reading trending searches: %v", err)
		terms = []models.TrendingTerm{}
	}
	return &dto.AdminDashboardResponse{Counts: counts, TrendingSearch: terms}, nil
}

func (s *analyticsService) AdminStats(ctx context.Context, period models.Period) (*dto.AdminStatsResponse, error) {
	from := since(s.now(), period.Days())
	a := s.repos.Analytics
	var signups, apps, offers []models.DailyCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { signups, err = a.SignupsPerDay(gctx, from); return })
	g.Go(func() (err error) { apps, err = a.PlatformApplicationsPerDay(gctx, from); return })
	g.Go(func() (err error) { offers, err = a.OffersPublishedPerDay(gctx, from); return })
	if err := g.Wait(); err != nil {
		return nil, MapRepoError(err, "computing platform stats")
	}
	return &dto.AdminStatsResponse{
		Period:          period,
		Signups:         dto.NewSeries(signups),
		Applications:    dto.NewSeries(apps),
		OffersPublished: dto.NewSeries(offers),
	}, nil
}
