package timeline_test

import (
	"marquee/shared/timeline"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type gig struct {
	id    int
	start time.Time
}

func startOf(g gig) time.Time { return g.start }

func TestPartition(t *testing.T) {
	now := time.Date(2030, 5, 1, 20, 0, 0, 0, time.UTC)

	gigs := []gig{
		{id: 1, start: now.Add(-48 * time.Hour)},
		{id: 2, start: now},
		{id: 3, start: now.Add(time.Nanosecond)},
		{id: 4, start: now.Add(-time.Nanosecond)},
	}

	past, upcoming := timeline.Partition(gigs, now, startOf)

	assert.Equal(t, []gig{gigs[0], gigs[3]}, past)
	assert.Equal(t, []gig{gigs[1], gigs[2]}, upcoming)
}

func TestPartition_BoundaryIsUpcoming(t *testing.T) {
	now := time.Date(2030, 5, 1, 20, 0, 0, 0, time.UTC)

	// same instant expressed in another zone
	atNow := gig{id: 1, start: now.In(time.FixedZone("EST", -5*3600))}

	past, upcoming := timeline.Partition([]gig{atNow}, now, startOf)

	assert.Empty(t, past)
	assert.Len(t, upcoming, 1)
}

func TestPartition_Empty(t *testing.T) {
	past, upcoming := timeline.Partition(nil, time.Now(), startOf)

	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestCountUpcoming(t *testing.T) {
	now := time.Date(2030, 5, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		gigs []gig
		want int
	}{
		{name: "no shows", gigs: nil, want: 0},
		{name: "only past", gigs: []gig{{start: now.Add(-time.Hour)}}, want: 0},
		{
			name: "mixed",
			gigs: []gig{{start: now.Add(-time.Hour)}, {start: now}, {start: now.Add(time.Hour)}},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeline.CountUpcoming(tt.gigs, now, startOf))
		})
	}
}
