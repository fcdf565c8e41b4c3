package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/database"
	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/testutil"
)

func TestInitializeRejectsUnknownDriver(t *testing.T) {
	_, err := database.Initialize(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestWithTransactionCommits(t *testing.T) {
	db := testutil.NewTestDB(t)

	err := database.WithTransaction(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(&models.Product{Name: "Shirt"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	boom := errors.New("boom")

	err := database.WithTransaction(context.Background(), db, func(tx *gorm.DB) error {
		product := &models.Product{Name: "Shirt"}
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.Sku{ProductID: product.ID, Price: decimal.NewFromInt(10), Stock: 1}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var products, skus int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Sku{}).Count(&skus).Error)
	assert.Zero(t, products)
	assert.Zero(t, skus)
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	db := testutil.NewTestDB(t)

	assert.Panics(t, func() {
		_ = database.WithTransaction(context.Background(), db, func(tx *gorm.DB) error {
			tx.Create(&models.Product{Name: "Shirt"})
			panic("unexpected")
		})
	})

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db := testutil.NewTestDB(t)

	err := db.Create(&models.Sku{ProductID: 4242, Price: decimal.NewFromInt(1)}).Error
	assert.Error(t, err)
}

func TestAttributeNameUniquePerProduct(t *testing.T) {
	db := testutil.NewTestDB(t)

	p1 := &models.Product{Name: "Shirt"}
	p2 := &models.Product{Name: "Hat"}
	require.NoError(t, db.Create(p1).Error)
	require.NoError(t, db.Create(p2).Error)

	require.NoError(t, db.Create(&models.Attribute{ProductID: p1.ID, Name: "Color"}).Error)
	require.NoError(t, db.Create(&models.Attribute{ProductID: p2.ID, Name: "Color"}).Error)
	assert.Error(t, db.Create(&models.Attribute{ProductID: p1.ID, Name: "Color"}).Error)
}

func TestNewRowsStartActive(t *testing.T) {
	db := testutil.NewTestDB(t)

	product := &models.Product{Name: "Shirt"}
	require.NoError(t, db.Create(product).Error)
	assert.Equal(t, models.RecordStatusActive, product.Status)
	assert.False(t, product.IsDeleted())
}
