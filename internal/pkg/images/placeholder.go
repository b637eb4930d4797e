package images

import "math/rand"

// announcementPlaceholders is the pool of stock images substituted when an
// announcement has no image of its own.
var announcementPlaceholders = []string{
	"https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=1200&q=80",
	"https://images.unsplash.com/photo-1541339907198-e08756dedf3f?w=1200&q=80",
	"https://images.unsplash.com/photo-1524178232363-1fb2b075b655?w=1200&q=80",
	"https://images.unsplash.com/photo-1509062522246-3755977927d7?w=1200&q=80",
	"https://images.unsplash.com/photo-1517486808906-6ca8b3f04846?w=1200&q=80",
	"https://images.unsplash.com/photo-1571260899304-425eee4c7efc?w=1200&q=80",
}

// RandomAnnouncementImage returns a randomly chosen placeholder image URL.
func RandomAnnouncementImage() string {
	return announcementPlaceholders[rand.Intn(len(announcementPlaceholders))]
}

// IsPlaceholder reports whether url is one of the built-in placeholders.
func IsPlaceholder(url string) bool {
	for _, p := range announcementPlaceholders {
		if p == url {
			return true
		}
	}
	return false
}
