package db

import (
	"path/filepath"
	"testing"
	"time"

	"autocase/internal/model"
	"autocase/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), 3)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteDiagramHistory(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveDiagram("webshop", base, []byte(`{"v":1}`)))
	require.NoError(t, store.SaveDiagram("webshop", base.AddDate(0, 1, 0), []byte(`{"v":2}`)))
	require.NoError(t, store.SaveDiagram("other", base, []byte(`{"v":1}`)))

	versions, err := store.DiagramVersions("webshop")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, []byte(`{"v":2}`), versions[0].Payload, "newest first")
	assert.Equal(t, []byte(`{"v":1}`), versions[1].Payload)

	current, previous, err := LatestTwo(store, "webshop")
	require.NoError(t, err)
	require.NotNil(t, current)
	require.NotNil(t, previous)
	assert.True(t, current.Generated.After(previous.Generated))
}

func TestSQLiteHistoryCapEvictsOldest(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		payload := []byte{byte('0' + i)}
		require.NoError(t, store.SaveDiagram("webshop", base.AddDate(0, i, 0), payload))
	}

	versions, err := store.DiagramVersions("webshop")
	require.NoError(t, err)
	require.Len(t, versions, 3, "cap at 3 retained versions")
	assert.Equal(t, []byte("4"), versions[0].Payload)
	assert.Equal(t, []byte("2"), versions[2].Payload, "oldest evicted first")
}

func TestSQLiteProjectRoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadProject("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	p := model.NewProject("webshop")
	tc := model.TestCase{
		TestName:        "checkout",
		ChangeType:      scoring.ChangeNew,
		UserFrequency:   3,
		BusinessImpact:  4,
		AffectedAreas:   2,
		EasyToAutomate:  5,
		QuickToAutomate: 5,
		Source:          model.SourceManual,
	}
	tc.Recompute()
	p.AddTestCase(tc)

	require.NoError(t, store.SaveProject(p))

	loaded, err := store.LoadProject("webshop")
	require.NoError(t, err)
	require.Len(t, loaded.TestCases, 1)
	assert.Equal(t, "checkout", loaded.TestCases[0].TestName)
	assert.Equal(t, p.TestCases[0].Scores.Total, loaded.TestCases[0].Scores.Total)
	assert.Equal(t, p.TestCases[0].Recommendation, loaded.TestCases[0].Recommendation)

	// Upsert keeps a single row per project name.
	p.ClearTestCases()
	require.NoError(t, store.SaveProject(p))
	loaded, err = store.LoadProject("webshop")
	require.NoError(t, err)
	assert.Empty(t, loaded.TestCases)
}

func TestFactory(t *testing.T) {
	store, err := NewStore(StoreConfig{Driver: "sqlite", ConnectionString: filepath.Join(t.TempDir(), "f.db")})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = NewStore(StoreConfig{Driver: "postgres"})
	assert.Error(t, err, "postgres requires a connection string")

	_, err = NewStore(StoreConfig{Driver: "mongodb"})
	assert.Error(t, err)
}
