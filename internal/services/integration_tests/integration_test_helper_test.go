package integration_tests

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"professionals-api/internal/database"
	"professionals-api/internal/models"
	"professionals-api/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// getTestPool connects to TEST_DATABASE_URL and migrates the schema once per run.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	migrateOnce.Do(func() {
		migrateErr = database.MigrateDSN(strings.Replace(dsn, "postgres://", "pgx5://", 1))
	})
	require.NoError(t, migrateErr, "Failed to migrate test database")

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// getTestRedis connects to TEST_REDIS_URL, skipping when it is not set.
func getTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_URL")
	if addr == "" {
		t.Skip("TEST_REDIS_URL environment variable not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, rdb.Ping(ctx).Err(), "Failed to connect to test Redis at %s", addr)
	t.Cleanup(func() {
		rdb.FlushDB(context.Background())
		rdb.Close()
	})
	return rdb
}

// cleanupTables empties the marketplace tables, keeping seeded reference data.
func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE users, companies, job_offers, applications,
		bookmarks, notifications, views RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Failed to truncate tables")
	log.Println("Cleaned marketplace tables")
}

func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, email string, role models.Role) *models.User {
	t.Helper()
	user, err := postgres.NewUserRepo(pool).Create(ctx, &models.User{Name: strings.Split(email, "@")[0], Email: email, Role: role})
	require.NoError(t, err, "Failed to create test user %s", email)
	return user
}

func createTestCompany(t *testing.T, ctx context.Context, pool *pgxpool.Pool, ownerEmail, name string) *models.Company {
	t.Helper()
	owner := createTestUser(t, ctx, pool, ownerEmail, models.RoleCompany)
	company, err := postgres.NewCompanyRepo(pool).Create(ctx, &models.Company{
		OwnerID: owner.ID,
		Name:    name,
		Slug:    strings.ToLower(strings.ReplaceAll(name, " ", "-")),
	})
	require.NoError(t, err, "Failed to create test company %s", name)
	return company
}
