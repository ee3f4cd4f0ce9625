package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortLink_MarshalJSON(t *testing.T) {
	link := ShortLink{
		Full:      "https://example.com/a/b",
		Short:     "abc123",
		Clicks:    2,
		CreatedAt: time.Date(2021, time.August, 14, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(link)

	require.NoError(t, err)
	assert.JSONEq(t, `{"full":"https://example.com/a/b","short":"abc123","clicks":2,"createdAt":"2021-08-14"}`, string(data))
}

func TestShortLink_UnmarshalJSON_InvalidDate(t *testing.T) {
	var link ShortLink

	err := json.Unmarshal([]byte(`{"full":"x","short":"y","clicks":0,"createdAt":"14.08.2021"}`), &link)

	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2021, time.March, 1, 2, 30, 0, 0, loc)

	// 2:30 по UTC+5 это ещё 28 февраля по UTC
	assert.Equal(t, time.Date(2021, time.February, 28, 0, 0, 0, 0, time.UTC), Today(now))
}
