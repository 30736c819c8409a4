package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertionOrderPreserved(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, []int{3, 1, 2}, m.Values())
	assert.Equal(t, 3, m.Len())
}

func TestGetSetDelete(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	m.Set("a", 10)
	v, _ = m.Get("a")
	assert.Equal(t, 10, v)

	m.Delete("a")
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestIteration(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	var keys []string
	for p := m.Front(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"a", "b"}, keys)

	back := m.Back()
	assert.Equal(t, "b", back.Key)

	var reversed []string
	for p := back; p != nil; p = p.Prev() {
		reversed = append(reversed, p.Key)
	}
	assert.Equal(t, []string{"b", "a"}, reversed)
}
