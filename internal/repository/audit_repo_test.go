package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenpay/admin-gateway/internal/model"
	"github.com/lumenpay/admin-gateway/internal/testutil"
)

func TestAuditRepository_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewAuditRepository(db)

	for i := 0; i < 5; i++ {
		err := repo.Create(&model.AuditEntry{
			AdminID:  7,
			Username: "admin",
			Resource: "plans",
			Action:   model.ActionCreate,
			EntityID: int64(i + 1),
			Detail:   fmt.Sprintf("created plan %d", i+1),
		})
		require.NoError(t, err)
	}

	entries, total, err := repo.List(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, entries, 3)

	// newest first
	assert.Equal(t, int64(5), entries[0].EntityID)
	assert.Equal(t, int64(3), entries[2].EntityID)

	entries, total, err = repo.List(2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, entries, 2)
}

func TestAuditRepository_ListByResource(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewAuditRepository(db)

	require.NoError(t, repo.Create(&model.AuditEntry{Resource: "plans", Action: model.ActionCreate, EntityID: 1}))
	require.NoError(t, repo.Create(&model.AuditEntry{Resource: "bots", Action: model.ActionDelete, EntityID: 2}))
	require.NoError(t, repo.Create(&model.AuditEntry{Resource: "plans", Action: model.ActionUpdate, EntityID: 3}))

	entries, total, err := repo.ListByResource("plans", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "plans", e.Resource)
	}

	_, total, err = repo.ListByResource("subscribers", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
