package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-jojoo/kontakclip/internal/core"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.Local)

	got, err := parseDate("", now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = parseDate("2024-01-05", now)
	require.NoError(t, err)
	assert.Equal(t, "05/01/24", core.DatePrefix(got))

	_, err = parseDate("05/01/2024", now)
	assert.Error(t, err)
}

func TestEncodeJSON(t *testing.T) {
	doc, err := encodeJSON(core.DefaultLocale(), []core.Contact{
		{ID: "1", DisplayName: "05/01/24 Ns A", PhoneNumber: "62811"},
		{ID: "2", DisplayName: "05/01/24 Ns B", PhoneNumber: ""},
	})
	require.NoError(t, err)

	var items []ExportItem
	require.NoError(t, json.Unmarshal([]byte(doc), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "ok", items[0].Status)
	assert.Equal(t, "empty", items[1].Status)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"online", "last seen"}, splitCSV(" online, ,last seen ,"))
}
