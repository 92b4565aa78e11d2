package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasmi00/yatrimap-frontend/pkg/category"
)

func TestNewWindow_Sizes(t *testing.T) {
	assert.Len(t, category.NewWindow(1280).Visible(), 6)
	assert.Len(t, category.NewWindow(768).Visible(), 6)
	assert.Len(t, category.NewWindow(767).Visible(), 3)
	assert.Len(t, category.NewWindow(375).Visible(), 3)
}

func TestWindow_NextClampsAtEnd(t *testing.T) {
	w := category.NewWindow(1280) // 6 visible of 8

	assert.True(t, w.HasNext())
	w.Next()
	w.Next()
	assert.Equal(t, 2, w.Index())
	assert.False(t, w.HasNext())

	w.Next() // past the end, stays clamped
	assert.Equal(t, 2, w.Index())

	visible := w.Visible()
	assert.Equal(t, "Lake and River", visible[0].Name)
	assert.Equal(t, "Adventure Sports", visible[len(visible)-1].Name)
}

func TestWindow_PrevClampsAtStart(t *testing.T) {
	w := category.NewWindow(375)

	assert.False(t, w.HasPrev())
	w.Prev()
	assert.Equal(t, 0, w.Index())

	w.Next()
	assert.True(t, w.HasPrev())
	w.Prev()
	assert.Equal(t, 0, w.Index())
}

func TestWindow_ResizeKeepsPositionValid(t *testing.T) {
	w := category.NewWindow(375) // 3 visible of 8
	for i := 0; i < 5; i++ {
		w.Next()
	}
	assert.Equal(t, 5, w.Index())

	// Widening to 6 visible forces the index back inside bounds.
	w.Resize(1280)
	assert.Equal(t, 2, w.Index())
	assert.Len(t, w.Visible(), 6)
}
