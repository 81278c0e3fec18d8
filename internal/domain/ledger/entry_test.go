//go:build unit

package ledger_test

import (
	"testing"

	"stockcore/internal/domain/ledger"
	"stockcore/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageEntry(t *testing.T) {
	t.Run("debits stock and keeps the additive invariant", func(t *testing.T) {
		entry, err := builder.NewEntryBuilder().BuildUsage()
		require.NoError(t, err)
		require.NotNil(t, entry)

		assert.Equal(t, ledger.TypeUsage, entry.Type())
		assert.True(t, entry.WeightChange().IsNegative())
		assert.True(t, entry.WeightAfter().Equal(entry.WeightBefore().Add(entry.WeightChange())))
		assert.False(t, entry.IsReversal())
		assert.Nil(t, entry.ReversalOfID())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := builder.NewEntryBuilder().
				With(func(b *builder.EntryBuilder) { b.Amount = amount }).
				BuildUsage()
			require.ErrorIs(t, err, ledger.ErrInvalidAmount)
		}
	})

	t.Run("rejects usage that would drive stock negative", func(t *testing.T) {
		_, err := builder.NewEntryBuilder().
			With(func(b *builder.EntryBuilder) {
				b.Before = decimal.NewFromInt(10)
				b.Amount = decimal.NewFromFloat(10.0001)
			}).
			BuildUsage()
		require.ErrorIs(t, err, ledger.ErrNegativeStock)
	})

	t.Run("allows usage down to exactly zero", func(t *testing.T) {
		entry, err := builder.NewEntryBuilder().
			With(func(b *builder.EntryBuilder) {
				b.Before = decimal.NewFromInt(10)
				b.Amount = decimal.NewFromInt(10)
			}).
			BuildUsage()
		require.NoError(t, err)
		assert.True(t, entry.WeightAfter().IsZero())
	})
}

func TestReturnEntry(t *testing.T) {
	t.Run("unrelated return credits stock", func(t *testing.T) {
		entry, err := builder.NewEntryBuilder().BuildReturn(nil)
		require.NoError(t, err)

		assert.Equal(t, ledger.TypeReturn, entry.Type())
		assert.True(t, entry.WeightChange().IsPositive())
		assert.False(t, entry.IsReversal())
		assert.True(t, entry.WeightAfter().Equal(entry.WeightBefore().Add(entry.WeightChange())))
	})

	t.Run("exact reversal negates the original entry", func(t *testing.T) {
		b := builder.NewEntryBuilder()
		orig, err := b.BuildUsage()
		require.NoError(t, err)

		reversal, err := b.
			With(func(eb *builder.EntryBuilder) { eb.Before = orig.WeightAfter() }).
			BuildReturn(orig)
		require.NoError(t, err)

		assert.True(t, reversal.IsReversal())
		require.NotNil(t, reversal.ReversalOfID())
		assert.Equal(t, orig.ID(), *reversal.ReversalOfID())
		assert.True(t, reversal.Reverses(orig))
		// Net effect of the pair is zero.
		assert.True(t, reversal.WeightAfter().Equal(orig.WeightBefore()))
	})

	t.Run("reversal amount must exactly negate the original", func(t *testing.T) {
		b := builder.NewEntryBuilder()
		orig, err := b.BuildUsage()
		require.NoError(t, err)

		_, err = b.
			With(func(eb *builder.EntryBuilder) {
				eb.Before = orig.WeightAfter()
				eb.Amount = eb.Amount.Add(decimal.NewFromFloat(0.0001))
			}).
			BuildReturn(orig)
		require.ErrorIs(t, err, ledger.ErrReversalAmount)
	})

	t.Run("reversal must reference the same resource", func(t *testing.T) {
		orig, err := builder.NewEntryBuilder().BuildUsage()
		require.NoError(t, err)

		_, err = builder.NewEntryBuilder().BuildReturn(orig)
		require.ErrorIs(t, err, ledger.ErrResourceMismatch)
	})
}

func TestAdjustmentEntry(t *testing.T) {
	t.Run("derives the change from the target amount", func(t *testing.T) {
		entry, err := builder.NewEntryBuilder().
			With(func(b *builder.EntryBuilder) { b.Before = decimal.NewFromInt(80) }).
			BuildAdjustment(decimal.NewFromInt(95), "cycle count correction")
		require.NoError(t, err)

		assert.Equal(t, ledger.TypeAdjustment, entry.Type())
		assert.True(t, entry.WeightChange().Equal(decimal.NewFromInt(15)))
		assert.True(t, entry.WeightAfter().Equal(decimal.NewFromInt(95)))
	})

	t.Run("downward adjustment produces a negative change", func(t *testing.T) {
		entry, err := builder.NewEntryBuilder().
			With(func(b *builder.EntryBuilder) { b.Before = decimal.NewFromInt(80) }).
			BuildAdjustment(decimal.NewFromInt(60), "damaged goods written off")
		require.NoError(t, err)

		assert.True(t, entry.WeightChange().Equal(decimal.NewFromInt(-20)))
	})

	t.Run("rejects a negative target", func(t *testing.T) {
		_, err := builder.NewEntryBuilder().
			BuildAdjustment(decimal.NewFromInt(-1), "bad target")
		require.ErrorIs(t, err, ledger.ErrNegativeTarget)
	})

	t.Run("requires a reason", func(t *testing.T) {
		_, err := builder.NewEntryBuilder().
			BuildAdjustment(decimal.NewFromInt(5), "   ")
		require.ErrorIs(t, err, ledger.ErrEmptyDescription)
	})
}
