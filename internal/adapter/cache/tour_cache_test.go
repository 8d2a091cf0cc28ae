package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturedKey(t *testing.T) {
	assert.Equal(t, "tours:featured:4", featuredKey(4))
	assert.Equal(t, "tours:featured:10", featuredKey(10))
}
