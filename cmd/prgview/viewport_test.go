package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportScroll(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d rem", (i+1)*10)
	}
	v := viewport{lines: lines, rows: 4}

	assert.Equal(t, lines[:4], v.visible())

	v.scroll(3)
	assert.Equal(t, 3, v.top)
	assert.Equal(t, lines[3:7], v.visible())

	v.scroll(100)
	assert.Equal(t, 6, v.top)
	assert.Equal(t, lines[6:], v.visible())

	v.scroll(-100)
	assert.Equal(t, 0, v.top)
}

func TestViewportShortListing(t *testing.T) {
	v := viewport{lines: []string{"10 end"}, rows: 29}
	v.scroll(5)
	assert.Equal(t, 0, v.top)
	assert.Equal(t, []string{"10 end"}, v.visible())

	empty := viewport{rows: 29}
	empty.scroll(1)
	assert.Empty(t, empty.visible())
}
