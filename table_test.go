package pstatedump

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	entries    []Entry
	entriesErr error
	scalars    map[string]int
	scalarErr  error
	limit      int
	hasLimit   bool
	limitErr   error
	model      string
	modelErr   error
}

func (f *fakeSource) FrequencyEntries(context.Context) ([]Entry, error) {
	return f.entries, f.entriesErr
}

func (f *fakeSource) Scalar(_ context.Context, key string) (int, bool, error) {
	if f.scalarErr != nil {
		return 0, false, f.scalarErr
	}
	v, ok := f.scalars[key]
	return v, ok, nil
}

func (f *fakeSource) LimitedStateID(context.Context) (int, bool, error) {
	return f.limit, f.hasLimit, f.limitErr
}

func (f *fakeSource) ModelName(context.Context) (string, error) {
	return f.model, f.modelErr
}

func descendingSource() *fakeSource {
	return &fakeSource{
		entries: []Entry{
			{ID: 0, FrequencyMHz: 4000},
			{ID: 1, FrequencyMHz: 3200},
			{ID: 2, FrequencyMHz: 1600},
		},
		scalars:  map[string]int{NominalFrequencyKey: 3_200_000_000},
		limit:    1,
		hasLimit: true,
		model:    "Intel(R) Core(TM) i7-8700B CPU",
	}
}

func TestLoad(t *testing.T) {
	table, err := Load(context.Background(), descendingSource())
	require.NoError(t, err)

	assert.Equal(t, "Intel(R) Core(TM) i7-8700B CPU", table.Model)
	assert.Equal(t, 3200, table.NominalMHz)
	assert.Equal(t, 3, table.Count())
	assert.Equal(t, []State{
		{ID: 0, FrequencyMHz: 4000, Class: Boost},
		{ID: 1, FrequencyMHz: 3200, Class: Nominal},
		{ID: 2, FrequencyMHz: 1600, Class: Unclassified},
	}, table.States)

	highest, ok := table.Highest()
	require.True(t, ok)
	assert.Equal(t, 4000, highest.FrequencyMHz)

	lowest, ok := table.Lowest()
	require.True(t, ok)
	assert.Equal(t, 1600, lowest.FrequencyMHz)

	limited, ok := table.Limited()
	require.True(t, ok)
	assert.Equal(t, 3200, limited.FrequencyMHz)
}

func TestLoadAscendingOrder(t *testing.T) {
	src := descendingSource()
	src.entries = []Entry{
		{ID: 2, FrequencyMHz: 1600},
		{ID: 1, FrequencyMHz: 3200},
		{ID: 0, FrequencyMHz: 4000},
	}

	table, err := Load(context.Background(), src)
	require.NoError(t, err)

	highest, ok := table.Highest()
	require.True(t, ok)
	assert.Equal(t, 0, highest.ID)
	assert.Equal(t, 4000, highest.FrequencyMHz)

	lowest, ok := table.Lowest()
	require.True(t, ok)
	assert.Equal(t, 2, lowest.ID)
	assert.Equal(t, 1600, lowest.FrequencyMHz)
}

func TestNewTableKeepsPlatformOrderForEqualFrequencies(t *testing.T) {
	table := NewTable("", 2000, []Entry{
		{ID: 3, FrequencyMHz: 2000},
		{ID: 1, FrequencyMHz: 2000},
		{ID: 2, FrequencyMHz: 2400},
	}, 0, false)

	ids := make([]int, 0, len(table.States))
	for _, s := range table.States {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{2, 3, 1}, ids)
}

func TestLoadMissingNominal(t *testing.T) {
	src := descendingSource()
	src.scalars = nil

	table, err := Load(context.Background(), src)
	require.NoError(t, err)
	assert.Zero(t, table.NominalMHz)
}

func TestLoadErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		mutate func(*fakeSource)
		want   error
	}{
		{"scalar", func(f *fakeSource) { f.scalarErr = ErrPlatformUnavailable }, ErrPlatformUnavailable},
		{"model", func(f *fakeSource) { f.modelErr = boom }, boom},
		{"limit", func(f *fakeSource) { f.limitErr = ErrPlatformUnavailable }, ErrPlatformUnavailable},
		{"entries", func(f *fakeSource) { f.entriesErr = ErrMissingField }, ErrMissingField},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := descendingSource()
			tt.mutate(src)

			table, err := Load(context.Background(), src)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, table)
		})
	}
}

func TestLimitedNoMatch(t *testing.T) {
	table := NewTable("", 3200, []Entry{{ID: 0, FrequencyMHz: 4000}}, 7, true)

	_, ok := table.Limited()
	assert.False(t, ok)
}

func TestLimitedWithoutLimit(t *testing.T) {
	table := NewTable("", 3200, []Entry{{ID: 0, FrequencyMHz: 4000}}, 0, false)

	_, ok := table.Limited()
	assert.False(t, ok, "id 0 must not match when the platform reports no limit")
}

func TestEmptyTable(t *testing.T) {
	table := NewTable("", 3200, nil, 0, false)

	assert.Zero(t, table.Count())
	_, ok := table.Highest()
	assert.False(t, ok)
	_, ok = table.Lowest()
	assert.False(t, ok)
}
