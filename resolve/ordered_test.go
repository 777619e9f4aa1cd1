package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMappingSetPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMapping[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestOrderedMappingSetOnExistingKeyKeepsItsPosition(t *testing.T) {
	m := NewOrderedMapping[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 99)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestOrderedMappingDeleteMissingKeyIsNoOp(t *testing.T) {
	m := NewOrderedMapping[string, int]()
	m.Set("a", 1)

	m.Delete("nonexistent")

	assert.Equal(t, []string{"a"}, m.Keys())
	assert.Equal(t, 1, m.Len())
}

func TestOrderedMappingDeleteRemovesFromOrder(t *testing.T) {
	m := NewOrderedMapping[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	m.Delete("b")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	_, ok := m.Get("b")
	assert.False(t, ok)
}

func TestOrderedMappingLastOnEmptyReportsNotOK(t *testing.T) {
	m := NewOrderedMapping[string, int]()

	_, _, ok := m.Last()
	assert.False(t, ok)
}

func TestOrderedMappingPopLastOnEmptyReportsNotOK(t *testing.T) {
	m := NewOrderedMapping[string, int]()

	k, v, ok := m.PopLast()
	assert.False(t, ok)
	assert.Zero(t, k)
	assert.Zero(t, v)
}

func TestOrderedMappingPopLastRemovesTailEntry(t *testing.T) {
	m := NewOrderedMapping[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	k, v, ok := m.PopLast()
	require.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"a"}, m.Keys())
	assert.Equal(t, 1, m.Len())
}

func TestOrderedMappingCloneIsIndependent(t *testing.T) {
	m := NewOrderedMapping[string, int]()
	m.Set("a", 1)

	clone := m.Clone()
	clone.Set("b", 2)
	clone.Set("a", 100)

	assert.Equal(t, []string{"a"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 1, v)

	assert.Equal(t, []string{"a", "b"}, clone.Keys())
	cv, _ := clone.Get("a")
	assert.Equal(t, 100, cv)
}
