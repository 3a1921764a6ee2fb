package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UpdateStamp(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, "15/08/2026 às 10:30", ts.UpdateStamp())
}

func TestTimestamp_Ordering(t *testing.T) {
	early := NewTimestamp(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	late := NewTimestamp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.False(t, Now().IsZero())
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC))

	data, err := ts.MarshalJSON()
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, ts.Time().Equal(back.Time()))
}

func TestErrorTaxonomy(t *testing.T) {
	assert.ErrorIs(t, NewFileMissingError("dados/x.xlsx"), ErrFileMissing)
	assert.ErrorIs(t, NewParseError("dados/x.xlsx", assert.AnError), ErrParse)
	assert.ErrorIs(t, NewEmptyDataError("dados/x.xlsx"), ErrEmptyData)
	assert.ErrorIs(t, NewSchemaViolationError("ensino", 3), ErrSchemaViolation)
	assert.ErrorIs(t, NewUnknownModuleError("x"), ErrUnknownModule)

	assert.True(t, IsLoadError(NewFileMissingError("p")))
	assert.True(t, IsLoadError(NewParseError("p", assert.AnError)))
	assert.True(t, IsLoadError(NewEmptyDataError("p")))
	assert.False(t, IsLoadError(NewSchemaViolationError("m", 1)))

	assert.True(t, IsSchemaViolation(NewSchemaViolationError("m", 1)))
	assert.True(t, IsUnknownModule(NewUnknownModuleError("x")))
	assert.False(t, IsUnknownModule(ErrParse))

	assert.True(t, IsWriteBlocked(ErrReadOnlyMode))
	assert.True(t, IsWriteBlocked(ErrCreateDisabled))
	assert.True(t, IsWriteBlocked(ErrOverwriteDisabled))
	assert.False(t, IsWriteBlocked(ErrFileMissing))
}
