package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAnnouncementImage(t *testing.T) {
	for i := 0; i < 50; i++ {
		url := RandomAnnouncementImage()
		assert.True(t, IsPlaceholder(url), "returned url must come from the placeholder pool: %s", url)
	}
}

func TestIsPlaceholder(t *testing.T) {
	assert.False(t, IsPlaceholder(""))
	assert.False(t, IsPlaceholder("https://cdn.example.com/own-image.png"))
	assert.True(t, IsPlaceholder(RandomAnnouncementImage()))
}
