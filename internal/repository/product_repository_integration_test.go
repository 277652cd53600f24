package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-product-catalog/internal/domain/entity"
	domainRepo "go-product-catalog/internal/domain/repository"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const skipIntegrationTests = "PRODUCT_CATALOG_SKIP_INTEGRATION_TESTS"

// ProductRepositorySuite exercises the repository against a real PostgreSQL
// instance with the shipped migrations applied.
type ProductRepositorySuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	db          *gorm.DB
	repo        domainRepo.ProductRepository
	ctx         context.Context
}

func (s *ProductRepositorySuite) SetupSuite() {
	s.ctx = context.Background()

	dbName := "products"
	dbUser := "user"
	dbPassword := "password"

	var err error
	s.pgContainer, err = tcpostgres.Run(s.ctx,
		"postgres:17.5-alpine",
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(dbUser),
		tcpostgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(s.T(), err, "Failed to run PostgreSQL container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get connection string from container")

	// Apply the shipped migrations
	wd, _ := os.Getwd()
	migrationsPath := filepath.Join(wd, "..", "..", "migrations")
	m, err := migrate.New("file://"+migrationsPath, connStr)
	require.NoError(s.T(), err, "Failed to create migrate instance")
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		_, _ = m.Close()
		require.NoError(s.T(), err, "Failed to apply migrations")
	}

	s.db, err = gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to open gorm connection")

	s.repo = NewProductRepository(s.db)
}

func (s *ProductRepositorySuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.T().Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}
}

// SetupTest truncates the products table so every test starts empty.
func (s *ProductRepositorySuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE products RESTART IDENTITY CASCADE").Error
	require.NoError(s.T(), err, "Failed to truncate products table")
}

func TestProductRepositoryIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(ProductRepositorySuite))
}

func (s *ProductRepositorySuite) createTestProduct(name, price string, available bool, category entity.Category) *entity.Product {
	s.T().Helper()
	product := &entity.Product{
		Name:        name,
		Description: "integration fixture",
		Price:       decimal.RequireFromString(price),
		Available:   available,
		Category:    category,
	}
	require.NoError(s.T(), s.repo.Create(s.ctx, product), "createTestProduct helper failed")
	return product
}

func (s *ProductRepositorySuite) TestCreateAndFindByID() {
	created := s.createTestProduct("Fedora", "12.50", true, entity.CategoryCloths)
	require.NotZero(s.T(), created.ID, "Created product ID should not be zero")

	fetched, err := s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), fetched)
	require.Equal(s.T(), created.ID, fetched.ID)
	require.Equal(s.T(), "Fedora", fetched.Name)
	require.Equal(s.T(), entity.CategoryCloths, fetched.Category)
	require.True(s.T(), fetched.Available)
}

// The decimal column must hand back exactly what went in.
func (s *ProductRepositorySuite) TestPriceExactRoundTrip() {
	for _, price := range []string{"12.50", "0.01", "19999.99", "0.10"} {
		created := s.createTestProduct("priced", price, true, entity.CategoryFood)

		fetched, err := s.repo.FindByID(s.ctx, created.ID)
		require.NoError(s.T(), err)
		require.NotNil(s.T(), fetched)
		require.True(s.T(), fetched.Price.Equal(decimal.RequireFromString(price)),
			"price %s drifted to %s", price, fetched.Price)
	}
}

func (s *ProductRepositorySuite) TestFindByID_Missing() {
	fetched, err := s.repo.FindByID(s.ctx, 424242)
	require.NoError(s.T(), err)
	require.Nil(s.T(), fetched)
}

func (s *ProductRepositorySuite) TestUpdateAndDelete() {
	created := s.createTestProduct("Hammer", "9.99", true, entity.CategoryTools)

	created.Description = "new_description"
	created.Available = false
	require.NoError(s.T(), s.repo.Update(s.ctx, created))

	fetched, err := s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), fetched)
	require.Equal(s.T(), "new_description", fetched.Description)
	require.False(s.T(), fetched.Available)

	require.NoError(s.T(), s.repo.Delete(s.ctx, created))
	require.NoError(s.T(), s.repo.Delete(s.ctx, created), "delete must be idempotent")

	fetched, err = s.repo.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.Nil(s.T(), fetched)
}

func (s *ProductRepositorySuite) TestExactMatchFilters() {
	s.createTestProduct("Fedora", "12.50", true, entity.CategoryCloths)
	s.createTestProduct("Fedora", "13.00", false, entity.CategoryCloths)
	s.createTestProduct("Hammer", "9.99", true, entity.CategoryTools)

	byName, err := s.repo.FindByName(s.ctx, "Fedora")
	require.NoError(s.T(), err)
	require.Len(s.T(), byName, 2)

	byAvailability, err := s.repo.FindByAvailability(s.ctx, true)
	require.NoError(s.T(), err)
	require.Len(s.T(), byAvailability, 2)

	byCategory, err := s.repo.FindByCategory(s.ctx, entity.CategoryTools)
	require.NoError(s.T(), err)
	require.Len(s.T(), byCategory, 1)
	require.Equal(s.T(), "Hammer", byCategory[0].Name)
}
