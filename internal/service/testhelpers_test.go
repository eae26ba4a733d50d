package service

import (
	"context"
	"fundflow-backend/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// single connection so the private in-memory database is shared by
	// every statement in the test
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Campaign{},
		&model.Review{},
		&model.DonorInfo{},
		&model.Payment{},
	))

	return db
}

type fakeStripeClient struct {
	secret string
	err    error
	calls  int
}

func (f *fakeStripeClient) CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}
