package accessscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateRender(t *testing.T) {
	t.Run("Renders placeholders at the given offset", func(t *testing.T) {
		p := Where("e.site_id = ? OR e.created_by_id = ?", int64(3), int64(7))
		clause, args := p.Render(4)
		assert.Equal(t, "e.site_id = $4 OR e.created_by_id = $5", clause, "placeholders should continue from the offset")
		assert.Equal(t, []interface{}{int64(3), int64(7)}, args, "args should keep their order")
	})

	t.Run("MatchAll renders empty", func(t *testing.T) {
		clause, args := MatchAll().Render(1)
		assert.Empty(t, clause, "MatchAll should add no filter")
		assert.Empty(t, args)
		assert.True(t, MatchAll().IsAll())
	})

	t.Run("MatchNone renders an always-false clause", func(t *testing.T) {
		clause, args := MatchNone().Render(1)
		assert.Equal(t, "1 = 0", clause, "MatchNone must never match a row")
		assert.Empty(t, args)
		assert.True(t, MatchNone().IsNone())
	})
}

func TestPredicateCombinators(t *testing.T) {
	t.Run("Or drops MatchNone operands", func(t *testing.T) {
		p := Or(MatchNone(), Where("e.created_by_id = ?", int64(9)))
		clause, args := p.Render(1)
		assert.Equal(t, "(e.created_by_id = $1)", clause)
		assert.Equal(t, []interface{}{int64(9)}, args)
	})

	t.Run("Or short-circuits on MatchAll", func(t *testing.T) {
		p := Or(Where("e.site_id = ?", int64(1)), MatchAll())
		assert.True(t, p.IsAll(), "anything OR everything is everything")
	})

	t.Run("Or of nothing is MatchNone", func(t *testing.T) {
		assert.True(t, Or(MatchNone(), MatchNone()).IsNone())
	})

	t.Run("And short-circuits on MatchNone", func(t *testing.T) {
		p := And(Where("e.site_id = ?", int64(1)), MatchNone())
		assert.True(t, p.IsNone(), "anything AND nothing is nothing")
	})

	t.Run("And joins clauses with placeholders renumbered once", func(t *testing.T) {
		p := And(Where("e.site_id = ?", int64(2)), Where("e.patient_id = ?", int64(5)))
		clause, args := p.Render(1)
		assert.Equal(t, "(e.site_id = $1) AND (e.patient_id = $2)", clause)
		assert.Equal(t, []interface{}{int64(2), int64(5)}, args)
	})
}
