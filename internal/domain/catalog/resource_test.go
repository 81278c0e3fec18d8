//go:build unit

package catalog_test

import (
	"strings"
	"testing"

	"stockcore/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResource(t *testing.T, maxUnits int64, unbounded bool) *catalog.Resource {
	t.Helper()
	res, err := catalog.NewResource(uuid.New(), uuid.New(), "Bench Lathe", "BL-200", maxUnits, unbounded)
	require.NoError(t, err)
	return res
}

func TestNewResource(t *testing.T) {
	cases := []struct {
		name     string
		resName  string
		maxUnits int64
		errIs    error
	}{
		{name: "valid", resName: "Bench Lathe", maxUnits: 10},
		{name: "empty name", resName: "", maxUnits: 10, errIs: catalog.ErrEmptyResourceName},
		{name: "whitespace name", resName: "   ", maxUnits: 10, errIs: catalog.ErrEmptyResourceName},
		{name: "name too long", resName: strings.Repeat("a", catalog.MaxResourceNameLength+1), maxUnits: 10, errIs: catalog.ErrResourceNameTooLong},
		{name: "negative capacity", resName: "Bench Lathe", maxUnits: -1, errIs: catalog.ErrNegativeCapacity},
		{name: "zero capacity", resName: "Bench Lathe", maxUnits: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := catalog.NewResource(uuid.New(), uuid.New(), c.resName, "BL-200", c.maxUnits, false)
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, res)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestAccommodates(t *testing.T) {
	res := newResource(t, 10, false)

	assert.True(t, res.Accommodates(0, 10), "full capacity from empty")
	assert.True(t, res.Accommodates(7, 3), "exactly fills capacity")
	assert.False(t, res.Accommodates(7, 4), "one unit over")
	assert.False(t, res.Accommodates(10, 1), "already full")

	unbounded := newResource(t, 0, true)
	assert.True(t, unbounded.Accommodates(1<<40, 1<<40), "unbounded never refuses")
}

func TestHeadroom(t *testing.T) {
	res := newResource(t, 10, false)

	assert.Equal(t, int64(10), res.Headroom(0))
	assert.Equal(t, int64(3), res.Headroom(7))
	assert.Equal(t, int64(0), res.Headroom(10))
	assert.Equal(t, int64(0), res.Headroom(15), "oversubscription clamps at zero")
}
