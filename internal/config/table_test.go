package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	_, err := newTable("bench", []any{1})
	assert.EqualError(t, err, "'bench' must be table type")

	tbl, err := newTable("bench", map[string]any{})
	require.NoError(t, err)
	assert.NoError(t, tbl.err)
}

func TestTable_Field(t *testing.T) {
	tbl, err := newTable("bench", map[string]any{
		"seed": int64(7),
		"sync": "yes",
		"min":  1.5,
	})
	require.NoError(t, err)

	assert.Nil(t, field(tbl, "missing", parseBoolFn()))

	seed := field(tbl, "seed", parseUint64Fn())
	require.NotNil(t, seed)
	assert.Equal(t, uint64(7), *seed)

	assert.Nil(t, field(tbl, "sync", parseBoolFn()))
	assert.ErrorContains(t, tbl.err, `field "sync"`)

	// The first failure sticks and later reads are skipped.
	assert.Nil(t, field(tbl, "min", parseFloatFn(checkFinite)))
	assert.ErrorContains(t, tbl.err, `field "sync"`)
}

func TestTable_List(t *testing.T) {
	tcs := []struct {
		name   string
		fields map[string]any
		assert func(t *testing.T, got []int, err error)
	}{
		{
			name:   "missing key",
			fields: map[string]any{},
			assert: func(t *testing.T, got []int, err error) {
				assert.NoError(t, err)
				assert.Nil(t, got)
			},
		},
		{
			name:   "empty array is not nil",
			fields: map[string]any{"sizes": []any{}},
			assert: func(t *testing.T, got []int, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, got)
				assert.Empty(t, got)
			},
		},
		{
			name:   "values",
			fields: map[string]any{"sizes": []any{int64(10), "1k"}},
			assert: func(t *testing.T, got []int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []int{10, 1000}, got)
			},
		},
		{
			name:   "bad element",
			fields: map[string]any{"sizes": []any{int64(10), true}},
			assert: func(t *testing.T, got []int, err error) {
				assert.ErrorContains(t, err, `field "sizes"[1]`)
				assert.Nil(t, got)
			},
		},
		{
			name:   "not a list",
			fields: map[string]any{"sizes": int64(10)},
			assert: func(t *testing.T, got []int, err error) {
				assert.ErrorContains(t, err, `field "sizes": expected list, got int64`)
				assert.Nil(t, got)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := newTable("bench", tc.fields)
			require.NoError(t, err)

			got := list(tbl, "sizes", parseCountFn())
			tc.assert(t, got, tbl.err)
		})
	}
}

func TestTable_Section(t *testing.T) {
	tbl, err := newTable("config", map[string]any{
		"general": map[string]any{"silent": true},
		"bench":   "oops",
	})
	require.NoError(t, err)

	general := section[GeneralOptions](tbl, "general")
	require.NotNil(t, general)
	require.NotNil(t, general.Silent)
	assert.True(t, *general.Silent)
	assert.Nil(t, general.LogLevel)

	assert.Nil(t, section[BenchOptions](tbl, "bench"))
	assert.EqualError(t, tbl.err, "section [bench]: 'bench' must be table type")
}
