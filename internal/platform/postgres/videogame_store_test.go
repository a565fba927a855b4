package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedex/gamedex-api/internal/domain"
	"github.com/gamedex/gamedex-api/internal/platform/postgres"
	"github.com/gamedex/gamedex-api/internal/store"
	"github.com/gamedex/gamedex-api/migrations"
)

// testDBEnvVar names the environment variable holding the test database
// URL. The integration tests skip when it is unset so the suite stays
// runnable without a database.
const testDBEnvVar = "GAMEDEX_TEST_DATABASE_URL"

// setupTestDB connects to the test database, applies the migrations and
// clears the table so every test starts from a known-empty state.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(testDBEnvVar)
	if url == "" {
		t.Skipf("skipping integration test: %s not set", testDBEnvVar)
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."))

	_, err = db.Exec("DELETE FROM video_games")
	require.NoError(t, err)

	return db
}

func insertTestGames(t *testing.T, s *postgres.PostgresVideoGameStore) []*domain.VideoGame {
	t.Helper()
	ctx := context.Background()

	games := []*domain.VideoGame{
		{Title: "A", Platform: "PS5", Developer: "DevOne", Publisher: "PubOne"},
		{Title: "B", Platform: "Switch", Developer: "DevTwo", Publisher: "PubTwo"},
		{Title: "C", Platform: "PS5", Developer: "DevOne", Publisher: "PubOne"},
	}
	for _, game := range games {
		require.NoError(t, s.Create(ctx, game))
		require.NotZero(t, game.ID)
	}
	return games
}

func TestPostgresVideoGameStoreCRUD(t *testing.T) {
	db := setupTestDB(t)
	s := postgres.NewPostgresVideoGameStore(db, nil)
	ctx := context.Background()

	games := insertTestGames(t, s)

	t.Run("get_by_id_round_trips", func(t *testing.T) {
		fetched, err := s.GetByID(ctx, games[0].ID)
		require.NoError(t, err)
		assert.Equal(t, games[0], fetched)
	})

	t.Run("get_by_id_missing", func(t *testing.T) {
		_, err := s.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrVideoGameNotFound)
	})

	t.Run("list_returns_all", func(t *testing.T) {
		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, len(games))
	})

	t.Run("projections_keep_duplicates", func(t *testing.T) {
		developers, err := s.Developers(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"DevOne", "DevTwo", "DevOne"}, developers)
	})

	t.Run("filter_is_case_insensitive", func(t *testing.T) {
		byPlatform, err := s.FindByPlatform(ctx, "ps5")
		require.NoError(t, err)
		assert.Len(t, byPlatform, 2)

		byDeveloper, err := s.FindByDeveloper(ctx, "devone")
		require.NoError(t, err)
		assert.Len(t, byDeveloper, 2)
	})

	t.Run("update_overwrites_all_fields", func(t *testing.T) {
		err := s.Update(ctx, &domain.VideoGame{ID: games[1].ID, Title: "B2"})
		require.NoError(t, err)

		updated, err := s.GetByID(ctx, games[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "B2", updated.Title)
		assert.Equal(t, "", updated.Platform)
	})

	t.Run("update_missing", func(t *testing.T) {
		err := s.Update(ctx, &domain.VideoGame{ID: 999999, Title: "Ghost"})
		assert.ErrorIs(t, err, store.ErrVideoGameNotFound)
	})

	t.Run("delete_returns_record", func(t *testing.T) {
		deleted, err := s.Delete(ctx, games[2].ID)
		require.NoError(t, err)
		assert.Equal(t, "C", deleted.Title)

		_, err = s.GetByID(ctx, games[2].ID)
		assert.ErrorIs(t, err, store.ErrVideoGameNotFound)
	})

	t.Run("delete_missing", func(t *testing.T) {
		_, err := s.Delete(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrVideoGameNotFound)
	})
}

func TestPostgresVideoGameStoreEmptyProjections(t *testing.T) {
	db := setupTestDB(t)
	s := postgres.NewPostgresVideoGameStore(db, nil)
	ctx := context.Background()

	titles, err := s.Titles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, titles)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.VideoGame{}, all)
}

func TestPostgresVideoGameStoreIDsIncrease(t *testing.T) {
	db := setupTestDB(t)
	s := postgres.NewPostgresVideoGameStore(db, nil)
	ctx := context.Background()

	first := domain.NewVideoGame("First", "", "", "")
	require.NoError(t, s.Create(ctx, first))

	second := domain.NewVideoGame("Second", "", "", "")
	require.NoError(t, s.Create(ctx, second))

	assert.Greater(t, second.ID, first.ID,
		fmt.Sprintf("expected id %d > %d", second.ID, first.ID))
}
