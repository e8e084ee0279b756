package repository_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB connects to the test PostgreSQL database, using environment
// variables or the docker-compose defaults. The schema is expected to be
// migrated already.
func setupTestDB(t *testing.T) *gorm.DB {
	host := getEnvOrDefault("DATABASE_HOST", "localhost")
	port := getEnvOrDefault("DATABASE_PORT", "5432")
	user := getEnvOrDefault("DATABASE_USER", "lumen_user")
	password := getEnvOrDefault("DATABASE_PASSWORD", "lumen_password")
	dbname := getEnvOrDefault("DATABASE_NAME", "lumen")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		host, port, user, password, dbname)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "Failed to connect to test database. Ensure PostgreSQL is running.")

	cleanupTestData(t, db)
	t.Cleanup(func() {
		cleanupTestData(t, db)
	})
	return db
}

// cleanupTestData removes rows from all tables in FK-safe order.
func cleanupTestData(t *testing.T, db *gorm.DB) {
	tables := []string{
		"opportunity_stage_history",
		"opportunity_products",
		"opportunities",
		"notes",
		"profiles",
		"partners",
		"contacts",
		"products",
		"customers",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id IS NOT NULL", table)).Error; err != nil {
			t.Logf("Note: Could not clean table %s: %v", table, err)
		}
	}
}

func createTestCustomer(t *testing.T, db *gorm.DB, name string) *domain.Customer {
	customer := &domain.Customer{
		Name:          name,
		Industry:      "Software",
		Status:        domain.CustomerStatusActive,
		CreatedByID:   "test-user",
		CreatedByName: "Test User",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func createTestOpportunity(t *testing.T, db *gorm.DB, customer *domain.Customer, name string) *domain.Opportunity {
	opportunity := &domain.Opportunity{
		CustomerID:     customer.ID,
		Name:           name,
		CurrentStage:   domain.StagePlan,
		EstimatedValue: 50000,
		Currency:       "USD",
		Priority:       domain.PriorityMedium,
		CreatedByID:    "test-user",
	}
	require.NoError(t, db.Create(opportunity).Error)
	return opportunity
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
