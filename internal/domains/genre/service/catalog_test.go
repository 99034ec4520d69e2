package service_test

import (
	"errors"
	"marquee/infras/otel/mocks"
	genreMocks "marquee/internal/domains/genre/mocks"
	"marquee/internal/domains/genre/model"
	"marquee/internal/domains/genre/service"
	"marquee/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoad(t *testing.T) {
	stored := []model.Genre{
		{ID: 3, Description: "Blues"},
		{ID: 1, Description: "Alternative"},
		{ID: 2, Description: "Blues"},
	}

	tests := []struct {
		name      string
		setupMock func(repo *genreMocks.MockGenre)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "existing genres are not seeded again",
			setupMock: func(repo *genreMocks.MockGenre) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantLen: 3,
		},
		{
			name: "empty table is seeded first",
			setupMock: func(repo *genreMocks.MockGenre) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, genres []model.Genre) error {
						assert.Len(t, genres, 19)
						assert.Equal(t, "Alternative", genres[0].Description)

						return nil
					})
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantLen: 3,
		},
		{
			name: "count error",
			setupMock: func(repo *genreMocks.MockGenre) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "seed error",
			setupMock: func(repo *genreMocks.MockGenre) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := genreMocks.NewMockGenre(ctrl)
			tt.setupMock(repo)

			catalog, err := service.Load(repo, mocks.NewOtel())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, catalog.All(), tt.wantLen)
			assert.Equal(t, 1, catalog.All()[0].ID)
		})
	}
}

func TestCatalog_Validate(t *testing.T) {
	catalog := service.NewCatalog([]model.Genre{
		{ID: 2, Description: "Blues"},
		{ID: 1, Description: "Alternative"},
		{ID: 5, Description: "Folk"},
	})

	tests := []struct {
		name    string
		ids     []int
		want    []int
		wantErr bool
	}{
		{name: "sorted and deduplicated", ids: []int{5, 1, 5, 2}, want: []int{1, 2, 5}},
		{name: "empty set", ids: nil, want: []int{}},
		{name: "unknown id", ids: []int{1, 4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Validate(tt.ids)

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.KindInvalidReference))
				assert.EqualError(t, err, "genre 4 does not exist")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	catalog := service.NewCatalog([]model.Genre{{ID: 7, Description: "Jazz"}})

	description, ok := catalog.Description(7)
	assert.True(t, ok)
	assert.Equal(t, "Jazz", description)

	_, ok = catalog.Description(8)
	assert.False(t, ok)
	assert.True(t, catalog.Has(7))
	assert.False(t, catalog.Has(8))
}
