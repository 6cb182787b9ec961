package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestFirst(t *testing.T) {
	assert.Equal(t, Request{Limit: 50}, First(50))
	assert.Equal(t, Request{Limit: DefaultPageSize}, First(0))
	assert.Equal(t, Request{Limit: DefaultPageSize}, First(-3))
}

func TestAdvance_HasMoreWhileBelowTotal(t *testing.T) {
	cursor := Advance(First(20), 20, intPtr(45))

	assert.True(t, cursor.HasMore())
	assert.Equal(t, 20, cursor.Consumed())
	assert.Equal(t, Request{Limit: 20, Offset: 20}, cursor.Next())

	cursor = Advance(cursor.Next(), 20, intPtr(45))
	assert.True(t, cursor.HasMore())
	assert.Equal(t, Request{Limit: 20, Offset: 40}, cursor.Next())

	cursor = Advance(cursor.Next(), 5, intPtr(45))
	assert.False(t, cursor.HasMore())
	assert.Equal(t, 45, cursor.Consumed())
}

func TestAdvance_UnknownTotalHasNoMore(t *testing.T) {
	cursor := Advance(First(20), 20, nil)

	_, known := cursor.Total()
	assert.False(t, known)
	assert.False(t, cursor.HasMore())
}

func TestAdvance_DoesNotChangePreviousCursor(t *testing.T) {
	first := Advance(First(10), 10, intPtr(30))
	second := Advance(first.Next(), 10, intPtr(30))

	assert.Equal(t, 10, first.Consumed())
	assert.Equal(t, 20, second.Consumed())
	total, known := second.Total()
	assert.True(t, known)
	assert.Equal(t, 30, total)
}

func TestAdvance_EmptyPage(t *testing.T) {
	cursor := Advance(Request{Limit: 20, Offset: 40}, 0, intPtr(40))

	assert.False(t, cursor.HasMore())
	assert.Equal(t, 40, cursor.Consumed())
}
