package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterializedViewIterateReturnsGivenSlice(t *testing.T) {
	v := NewMaterializedView([]int{1, 2, 3})

	assert.Equal(t, []int{1, 2, 3}, v.Iterate())
	assert.False(t, v.Empty())
}

func TestMaterializedViewEmptySlice(t *testing.T) {
	v := NewMaterializedView([]int{})

	assert.True(t, v.Empty())
	assert.Empty(t, v.Iterate())
}

func TestZeroValueViewIsEmpty(t *testing.T) {
	var v IterableView[int]

	assert.True(t, v.Empty())
	assert.Nil(t, v.Iterate())
}

func TestLazyViewReinvokesFactoryOnEachIterate(t *testing.T) {
	calls := 0
	v := NewLazyView(func() []int {
		calls++
		return []int{calls}
	})

	first := v.Iterate()
	second := v.Iterate()

	assert.Equal(t, []int{1}, first)
	assert.Equal(t, []int{2}, second)
	assert.Equal(t, 2, calls)
}

func TestLazyViewEmptyAlsoInvokesFactory(t *testing.T) {
	calls := 0
	v := NewLazyView(func() []int {
		calls++
		return nil
	})

	assert.True(t, v.Empty())
	assert.Equal(t, 1, calls)
}

func TestLazyViewWithNilFactoryIsEmpty(t *testing.T) {
	v := NewLazyView[int](nil)

	assert.True(t, v.Empty())
	assert.Nil(t, v.Iterate())
}
