package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want time.Time
	}{
		{
			name: "naive datetime without offset",
			wire: `"1937-09-21T00:00:00"`,
			want: time.Date(1937, 9, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "naive datetime with microseconds",
			wire: `"2026-08-01T10:00:00.123456"`,
			want: time.Date(2026, 8, 1, 10, 0, 0, 123456000, time.UTC),
		},
		{
			name: "rfc3339 with offset",
			wire: `"2026-08-01T10:00:00+02:00"`,
			want: time.Date(2026, 8, 1, 10, 0, 0, 0, time.FixedZone("", 2*60*60)),
		},
		{
			name: "rfc3339 utc",
			wire: `"2026-08-01T10:00:00Z"`,
			want: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Time
			require.NoError(t, json.Unmarshal([]byte(tc.wire), &ts))
			assert.True(t, ts.Equal(tc.want), "got %s, want %s", ts, tc.want)
		})
	}

	t.Run("null and empty leave the zero value", func(t *testing.T) {
		var ts Time
		require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
		assert.True(t, ts.IsZero())
		require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
		assert.True(t, ts.IsZero())
	})

	t.Run("garbage is an error", func(t *testing.T) {
		var ts Time
		assert.Error(t, json.Unmarshal([]byte(`"21/09/1937"`), &ts))
	})
}

func TestBook_DecodesNaiveServerDates(t *testing.T) {
	var book Book
	require.NoError(t, json.Unmarshal([]byte(
		`{"id": 1, "title": "The Hobbit", "price": "12.99",
		  "published_date": "1937-09-21T00:00:00", "stock_quantity": 3}`), &book))
	assert.Equal(t, "The Hobbit", book.Title)
	assert.Equal(t, 1937, book.PublishedDate.Year())
}
