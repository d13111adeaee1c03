package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grana/internal/model"
)

func TestParseKind(t *testing.T) {
	kind, err := parseKind("income")
	require.NoError(t, err)
	assert.Equal(t, model.KindIncome, kind)

	kind, err = parseKind("expense")
	require.NoError(t, err)
	assert.Equal(t, model.KindExpense, kind)

	_, err = parseKind("Income")
	assert.Error(t, err)
	_, err = parseKind("")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		_, err := parseID(bad)
		assert.Error(t, err, "parseID(%q)", bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = parseDate("05/01/2024")
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := endOfDay(d)

	assert.True(t, end.After(time.Date(2024, 1, 5, 23, 59, 59, 0, time.UTC)))
	assert.True(t, end.Before(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)))
}
