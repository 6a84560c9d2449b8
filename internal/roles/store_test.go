package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoHn11117/resume-scorer/internal/types"
)

func TestNewStoreLoadsEmbeddedTable(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	assert.Contains(t, store.RoleNames(), "software_engineer")
	assert.True(t, store.HasRole("devops_engineer"))
	assert.False(t, store.HasRole("wizard"))
}

func TestKeywordsPerLevel(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	entry, err := store.Keywords("software_engineer", types.LevelEntry)
	require.NoError(t, err)
	assert.Contains(t, entry, "git")

	senior, err := store.Keywords("software_engineer", types.LevelSenior)
	require.NoError(t, err)
	assert.Contains(t, senior, "system design")
	assert.NotEqual(t, entry, senior)
}

func TestUnknownRoleFailsFast(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	_, err = store.Keywords("astronaut", types.LevelMid)
	var invalid *InvalidRoleOrLevelError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "astronaut", invalid.Role)

	_, err = store.Keywords("software_engineer", types.Level("principal"))
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "principal", invalid.Level)
}

func TestWeightsSumToOne(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for _, role := range store.RoleNames() {
		w, err := store.Weights(role)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, w.Keywords+w.Content+w.Format+w.Polish, 0.001, "role %s", role)
	}
}

func TestExpectations(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	senior, err := store.Expectation(types.LevelSenior)
	require.NoError(t, err)
	assert.Equal(t, 6, senior.MinYears)

	minYears := store.LevelMinYears()
	assert.Equal(t, 0, minYears[types.LevelEntry])
	assert.Equal(t, 3, minYears[types.LevelMid])
}

func TestKeywordsReturnsCopy(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	first, err := store.Keywords("product_manager", types.LevelMid)
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := store.Keywords("product_manager", types.LevelMid)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0])
}
