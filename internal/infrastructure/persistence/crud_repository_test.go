package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

func TestCRUDRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewCRUDRepository[models.MixDesign](db)
	ctx := context.Background()

	design := &models.MixDesign{
		DesignCode:     "M25-STD",
		Grade:          "M25",
		TargetStrength: decimal.NewFromInt(25),
	}
	require.NoError(t, repo.Create(ctx, design))
	assert.NotEqual(t, uuid.Nil, design.ID)

	found, err := repo.FindByID(ctx, design.ID)
	require.NoError(t, err)
	assert.Equal(t, "M25-STD", found.DesignCode)
	assert.True(t, found.TargetStrength.Equal(decimal.NewFromInt(25)))
}

func TestCRUDRepository_FindByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCRUDRepository[models.MixDesign](db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCRUDRepository_CreateDuplicate(t *testing.T) {
	db := openTestDB(t)
	repo := NewCRUDRepository[models.MixDesign](db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.MixDesign{DesignCode: "M30-A", Grade: "M30"}))
	err := repo.Create(ctx, &models.MixDesign{DesignCode: "M30-A", Grade: "M30"})
	assert.ErrorIs(t, err, shared.ErrDuplicateEntry)
}

func TestCRUDRepository_ListPagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewCRUDRepository[models.MixDesign](db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		design := &models.MixDesign{
			DesignCode: fmt.Sprintf("M%d-LIST", 20+i),
			Grade:      fmt.Sprintf("M%d", 20+i),
		}
		design.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, design))
	}

	rows, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, rows, 2)

	// Newest first.
	assert.Equal(t, "M24-LIST", rows[0].DesignCode)
	assert.Equal(t, "M23-LIST", rows[1].DesignCode)

	rows, _, err = repo.List(ctx, 3, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "M20-LIST", rows[0].DesignCode)
}

func TestCRUDRepository_Update(t *testing.T) {
	db := openTestDB(t)
	repo := NewCRUDRepository[models.MixDesign](db)
	ctx := context.Background()

	design := &models.MixDesign{DesignCode: "M40-U", Grade: "M40", Description: "original"}
	require.NoError(t, repo.Create(ctx, design))

	design.Description = "revised"
	design.Slump = decimal.NewFromInt(100)
	require.NoError(t, repo.Update(ctx, design))

	found, err := repo.FindByID(ctx, design.ID)
	require.NoError(t, err)
	assert.Equal(t, "revised", found.Description)
	assert.True(t, found.Slump.Equal(decimal.NewFromInt(100)))
}

func TestCRUDRepository_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewCRUDRepository[models.MixDesign](db)
	ctx := context.Background()

	design := &models.MixDesign{DesignCode: "M50-D", Grade: "M50"}
	require.NoError(t, repo.Create(ctx, design))
	require.NoError(t, repo.Delete(ctx, design.ID))

	_, err := repo.FindByID(ctx, design.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// Second delete has nothing to remove.
	assert.ErrorIs(t, repo.Delete(ctx, design.ID), shared.ErrNotFound)
}

func TestCRUDRepository_Exists(t *testing.T) {
	db := openTestDB(t)
	repo := NewCRUDRepository[models.MixDesign](db)
	ctx := context.Background()

	design := &models.MixDesign{DesignCode: "M20-E", Grade: "M20"}
	require.NoError(t, repo.Create(ctx, design))

	ok, err := repo.Exists(ctx, design.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
