package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

func TestCustomerRepository_Search(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Customer{CustomerName: "Apex Constructions", Phone: "9800011122", IsActive: 1}))
	require.NoError(t, repo.Create(ctx, &models.Customer{CustomerName: "Bharat Infra", ContactPerson: "R. Apexkumar", IsActive: 1}))
	require.NoError(t, repo.Create(ctx, &models.Customer{CustomerName: "Coastal Builders", Email: "site@coastal.example", IsActive: 1}))

	// Matches name on one row and contact person on another.
	customers, total, err := repo.Search(ctx, "Apex", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, customers, 2)

	customers, total, err = repo.Search(ctx, "coastal.example", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, customers, 1)
	assert.Equal(t, "Coastal Builders", customers[0].CustomerName)

	// Empty term lists everything.
	_, total, err = repo.Search(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestCustomerRepository_SoftDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	customer := &models.Customer{CustomerName: "Apex Constructions", IsActive: 1}
	require.NoError(t, repo.Create(ctx, customer))

	actor := uuid.New()
	require.NoError(t, repo.SoftDelete(ctx, customer.ID, actor))

	// Row stays, flagged inactive with the actor recorded.
	found, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.IsActive)
	require.NotNil(t, found.UpdatedBy)
	assert.Equal(t, actor, *found.UpdatedBy)
}

func TestCustomerRepository_SoftDeleteNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormCustomerRepository(db)

	err := repo.SoftDelete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
