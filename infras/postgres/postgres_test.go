package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointDSN(t *testing.T) {
	tests := []struct {
		name   string
		target endpoint
		want   string
	}{
		{
			name:   "with timezone",
			target: endpoint{host: "db", port: "5432", username: "marquee", password: "secret", database: "marquee", sslMode: "disable", timezone: "UTC"},
			want:   "postgres://marquee:secret@db:5432/marquee?sslmode=disable&timezone=UTC",
		},
		{
			name:   "password is escaped",
			target: endpoint{host: "db", port: "5432", username: "marquee", password: "p/ss", database: "test_marquee", sslMode: "require"},
			want:   "postgres://marquee:p%2Fss@db:5432/test_marquee?sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.dsn())
		})
	}
}

func TestConnection_CloseWithoutPools(t *testing.T) {
	assert.NoError(t, (&Connection{}).Close())
}
