package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"campus-console/config"
	"campus-console/internal/model"
	"campus-console/internal/repository"
	"campus-console/pkg/jwt"
)

var errMockStorage = errors.New("mock storage failure")

// ── Mock LocationRepository ──

// mockLocationRepo 以切片保存，保持插入顺序
type mockLocationRepo struct {
	rows    []model.Location
	listErr error
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	maxID := 0
	for _, r := range m.rows {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	loc.ID = maxID + 1
	m.rows = append(m.rows, *loc)
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id int) (*model.Location, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			loc := m.rows[i]
			return &loc, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]model.Location(nil), m.rows...), nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	for i := range m.rows {
		if m.rows[i].ID == loc.ID {
			m.rows[i] = *loc
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (m *mockLocationRepo) Delete(_ context.Context, id int) error {
	kept := m.rows[:0]
	for _, r := range m.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.rows = kept
	return nil
}

// ── Mock RouteRepository ──

type mockRouteRepo struct {
	rows    []model.Route
	listErr error
}

func newMockRouteRepo() *mockRouteRepo {
	return &mockRouteRepo{}
}

func (m *mockRouteRepo) Create(_ context.Context, route *model.Route) error {
	maxID := 0
	for _, r := range m.rows {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	route.ID = maxID + 1
	m.rows = append(m.rows, *route)
	return nil
}

func (m *mockRouteRepo) GetByID(_ context.Context, id int) (*model.Route, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			r := m.rows[i]
			return &r, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockRouteRepo) List(_ context.Context) ([]model.Route, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]model.Route(nil), m.rows...), nil
}

func (m *mockRouteRepo) Update(_ context.Context, route *model.Route) error {
	for i := range m.rows {
		if m.rows[i].ID == route.ID {
			m.rows[i] = *route
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (m *mockRouteRepo) Delete(_ context.Context, id int) error {
	kept := m.rows[:0]
	for _, r := range m.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.rows = kept
	return nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	rows      []model.Notification
	appendErr error
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Append(_ context.Context, n *model.Notification) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	n.ID = len(m.rows) + 1
	m.rows = append(m.rows, *n)
	return nil
}

func (m *mockNotificationRepo) List(_ context.Context) ([]model.Notification, error) {
	return append([]model.Notification(nil), m.rows...), nil
}

func (m *mockNotificationRepo) messages() []string {
	out := make([]string, 0, len(m.rows))
	for _, n := range m.rows {
		out = append(out, n.Message)
	}
	return out
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users []model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{}
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].Username == username {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), m.users...), nil
}

// ── 测试夹具 ──

type mockRepos struct {
	user         *mockUserRepo
	location     *mockLocationRepo
	route        *mockRouteRepo
	notification *mockNotificationRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		user:         newMockUserRepo(),
		location:     newMockLocationRepo(),
		route:        newMockRouteRepo(),
		notification: newMockNotificationRepo(),
	}
	repo := &repository.Repository{
		User:         m.user,
		Location:     m.location,
		Route:        m.route,
		Notification: m.notification,
	}
	return repo, m
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL: 15 * time.Minute,
		},
		Feature: config.FeatureConfig{
			NotifyLocationChanges: true,
			NotificationUserID:    1,
		},
	}
}

func newTestService(cfg *config.Config) (*Service, *mockRepos) {
	repo, m := newMockRepository()
	svc := NewService(cfg, repo, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
	return svc, m
}

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }
