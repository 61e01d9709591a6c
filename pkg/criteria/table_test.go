package criteria

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borsuksoftware/conical-es/pkg/dates"
	"github.com/borsuksoftware/conical-es/pkg/models"
)

func populated(t *testing.T, indices ...int) *Table {
	t.Helper()
	table := NewTable()
	for _, idx := range indices {
		require.NoError(t, table.Add(idx, FieldProduct, "svc"))
	}
	return table
}

func TestValidate_Complete(t *testing.T) {
	for k := 0; k <= 5; k++ {
		indices := make([]int, k)
		for i := range indices {
			indices[i] = i
		}
		table := populated(t, indices...)
		assert.NoError(t, table.Validate(k), "k=%d", k)
	}
}

func TestValidate_ReportsRemovedIndex(t *testing.T) {
	const k = 5
	for missing := 0; missing < k; missing++ {
		var indices []int
		for i := 0; i < k; i++ {
			if i != missing {
				indices = append(indices, i)
			}
		}
		table := populated(t, indices...)

		err := table.Validate(k)
		var mce *MissingCriteriaError
		require.True(t, errors.As(err, &mce), "missing=%d", missing)
		assert.Equal(t, missing, mce.Index)
		assert.Equal(t, k, mce.Expected)
		assert.ErrorIs(t, err, ErrConfiguration)
	}
}

func TestValidate_LowestMissingWins(t *testing.T) {
	table := populated(t, 0, 3)

	err := table.Validate(5)
	var mce *MissingCriteriaError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, 1, mce.Index)
	assert.Equal(t, "search criteria #1 doesn't exist, expected 5 criteria", err.Error())
}

func TestValidate_NegativeCount(t *testing.T) {
	err := NewTable().Validate(-1)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestDerivedCount(t *testing.T) {
	assert.Equal(t, 0, NewTable().DerivedCount())
	assert.Equal(t, 2, populated(t, 0, 1).DerivedCount())
	assert.Equal(t, 4, populated(t, 3, 0).DerivedCount())

	gappy := populated(t, 0, 2)
	assert.Equal(t, 3, gappy.DerivedCount())
	assert.Error(t, gappy.Validate(gappy.DerivedCount()))
}

func TestExpectedCount(t *testing.T) {
	table := populated(t, 0, 1)
	assert.Equal(t, 2, table.ExpectedCount(nil))

	explicit := 3
	assert.Equal(t, 3, table.ExpectedCount(&explicit))
}

func TestSet_LastWins(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set(0, FieldName, "first"))
	require.NoError(t, table.Set(0, FieldName, "second"))
	require.NoError(t, table.Set(0, FieldPrefix, "ci"))
	require.NoError(t, table.Set(0, FieldPrefix, "nightly"))

	r, ok := table.Get(0)
	require.True(t, ok)
	assert.Equal(t, "second", r.Name)
	require.NotNil(t, r.Prefix)
	assert.Equal(t, "nightly", *r.Prefix)
}

func TestSet_DateFieldsAreIndependent(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set(0, FieldMinRefDate, "2024-01-01"))
	require.NoError(t, table.Set(0, FieldMaxRefDate, "2024-02-01"))
	require.NoError(t, table.Set(0, FieldMaxRefDateFormat, "yyyy-MM-dd"))
	require.NoError(t, table.Set(0, FieldMinRunDate, "2024-03-01"))
	require.NoError(t, table.Set(0, FieldMaxRunDate, "04/01/2024"))
	require.NoError(t, table.Set(0, FieldMaxRunDateFormat, "MM/dd/yyyy"))

	r, _ := table.Get(0)
	assert.Equal(t, dates.Raw{Value: "2024-01-01"}, r.MinRefDate)
	assert.Equal(t, dates.Raw{Value: "2024-02-01", Format: "yyyy-MM-dd"}, r.MaxRefDate)
	assert.Equal(t, dates.Raw{Value: "2024-03-01"}, r.MinRunDate)
	assert.Equal(t, dates.Raw{Value: "04/01/2024", Format: "MM/dd/yyyy"}, r.MaxRunDate)
}

func TestAdd_Accumulates(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Add(0, FieldProduct, "svcA"))
	require.NoError(t, table.Add(0, FieldProduct, "SVCA"))
	require.NoError(t, table.Add(0, FieldProduct, "svcB"))
	require.NoError(t, table.Add(0, FieldTag, "smoke"))
	require.NoError(t, table.Add(0, FieldTag, "Smoke"))
	require.NoError(t, table.Add(0, FieldStatus, "Standard"))
	require.NoError(t, table.Add(0, FieldStatus, "Standard"))
	require.NoError(t, table.Add(0, FieldStatus, "Locked"))

	r, _ := table.Get(0)
	assert.Equal(t, []string{"svcA", "svcB"}, r.Products.Values())
	assert.Equal(t, []string{"smoke"}, r.Tags.Values())
	assert.Equal(t, []models.Status{models.StatusStandard, models.StatusLocked}, r.Statuses)
}

func TestAdd_UnknownStatus(t *testing.T) {
	table := NewTable()

	err := table.Add(4, FieldStatus, "Running")
	require.Error(t, err)

	var uve *UnknownValueError
	require.True(t, errors.As(err, &uve))
	assert.Equal(t, 4, uve.Index)
	assert.Equal(t, "Running", uve.Value)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "'Running'")
	assert.Equal(t, 0, table.Len(), "a rejected status must not create the record")
}

func TestSetAndAddRejectWrongKind(t *testing.T) {
	table := NewTable()
	assert.ErrorIs(t, table.Set(0, FieldTag, "x"), ErrConfiguration)
	assert.ErrorIs(t, table.Add(0, FieldName, "x"), ErrConfiguration)
	assert.ErrorIs(t, table.Set(-1, FieldName, "x"), ErrConfiguration)
}

func TestApply(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Apply(1, "PREFIX", "nightly"))
	require.NoError(t, table.Apply(1, "tag", "smoke"))
	require.NoError(t, table.Apply(1, "maxrundate", "2024-05-01"))

	r, ok := table.Get(1)
	require.True(t, ok)
	assert.Equal(t, "nightly", *r.Prefix)
	assert.Equal(t, []string{"smoke"}, r.Tags.Values())
	assert.Equal(t, "2024-05-01", r.MaxRunDate.Value)
	assert.False(t, r.MaxRefDate.IsSet())

	err := table.Apply(2, "colour", "blue")
	var ufe *UnknownFieldError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, 2, ufe.Index)
	assert.Equal(t, "unknown search criteria name 'colour' found for idx #2", err.Error())
}

func TestIndicesAndRecords(t *testing.T) {
	table := populated(t, 2, 0, 1)
	assert.Equal(t, []int{0, 1, 2}, table.Indices())

	records, err := table.Records(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = table.Records(4)
	assert.Error(t, err)
}

func TestLookupField(t *testing.T) {
	for _, f := range Fields() {
		got, ok := LookupField(f.String())
		require.True(t, ok, f.String())
		assert.Equal(t, f, got)
	}
	_, ok := LookupField("nope")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Field(99).String())
}
