package service_test

import (
	"context"
	"marquee/infras/otel/mocks"
	"marquee/infras/postgres"
	"marquee/internal/domains/genre/model/dto"
	"marquee/internal/domains/genre/repository"
	"marquee/internal/domains/genre/service"
	"marquee/internal/testdb"
	"marquee/shared/failure"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newVenueGenres(t *testing.T) (service.VenueGenres, *postgres.Connection) {
	t.Helper()

	db := testdb.New(t)
	otl := mocks.NewOtel()

	catalog, err := service.Load(repository.New(db, otl), otl)
	require.NoError(t, err)

	_, err = db.Write.Exec("INSERT INTO venues (name) VALUES ('The Musical Hop')")
	require.NoError(t, err)

	return service.NewVenueGenres(repository.NewVenueGenre(db, otl), catalog, postgres.NewTransactor(db), otl), db
}

func genreIDs(genres []dto.GenreResponse) []int {
	ids := make([]int, len(genres))
	for i, genre := range genres {
		ids[i] = genre.ID
	}

	return ids
}

func TestVenueGenres_Set(t *testing.T) {
	ctx := context.Background()
	genres, _ := newVenueGenres(t)

	got, err := genres.Set(ctx, 1, []int{9, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 9}, genreIDs(got))
	assert.Equal(t, "Blues", got[0].Description)

	t.Run("replacement drops the old set", func(t *testing.T) {
		got, err := genres.Set(ctx, 1, []int{7, 2})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 7}, genreIDs(got))
	})

	t.Run("unknown id leaves the set unchanged", func(t *testing.T) {
		_, err := genres.Set(ctx, 1, []int{3, 999})
		assert.True(t, failure.Is(err, failure.KindInvalidReference))

		got, err := genres.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 7}, genreIDs(got))
	})

	t.Run("empty set clears every genre", func(t *testing.T) {
		got, err := genres.Set(ctx, 1, []int{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestVenueGenres_TxScoped(t *testing.T) {
	ctx := context.Background()
	genres, db := newVenueGenres(t)

	_, err := genres.Set(ctx, 1, []int{1, 4})
	require.NoError(t, err)

	result := postgres.NewTransactor(db).Run(ctx, func(tx *sqlx.Tx) error {
		if err := genres.SetTx(ctx, tx, 1, []int{6}); err != nil {
			return err
		}

		return genres.ClearTx(ctx, tx, 1)
	})
	require.True(t, result.Committed())

	got, err := genres.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got)

	result = postgres.NewTransactor(db).Run(ctx, func(tx *sqlx.Tx) error {
		return genres.SetTx(ctx, tx, 1, []int{0})
	})
	assert.Equal(t, postgres.TxRolledBack, result.Status)
	assert.True(t, failure.Is(result.Err, failure.KindInvalidReference))
}
