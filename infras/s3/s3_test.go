package s3

import (
	"marquee/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"

	svc := &s3Impl{Config: cfg}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "uploaded object", url: "https://cdn.example.com/venues/abc.png", want: "venues/abc.png"},
		{name: "foreign url", url: "https://images.unsplash.com/photo-1", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GetObjectNameFromURL(tt.url))
		})
	}
}

func TestGetObjectNameFromURL_NoPublicDomain(t *testing.T) {
	svc := &s3Impl{Config: &config.Config{}}

	assert.Empty(t, svc.GetObjectNameFromURL("/venues/abc.png"))
}

func TestPublicURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.PublicDomain = "https://cdn.example.com"

	svc := &s3Impl{Config: cfg}

	assert.Equal(t, "https://cdn.example.com/artists/x.jpg", svc.publicURL("artists/x.jpg"))
}
