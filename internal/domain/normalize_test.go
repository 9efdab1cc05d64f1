package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProductKey(t *testing.T) {
	assert.Equal(t, "widget", NormalizeProductKey("Widget"))
	assert.Equal(t, "widget", NormalizeProductKey("WIDGET"))
	assert.Equal(t, "widget", NormalizeProductKey("widget"))
	// повторное применение — no-op
	assert.Equal(t, NormalizeProductKey("Widget"), NormalizeProductKey(NormalizeProductKey("Widget")))
}
