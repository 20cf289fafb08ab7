package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModify(t *testing.T) {
	t.Parallel()

	base := time.Date(2021, time.April, 15, 10, 30, 45, 500, time.UTC)

	tests := []struct {
		name  string
		field Field
		value int
		want  time.Time
	}{
		{"year", Year, 2024, time.Date(2024, time.April, 15, 10, 30, 45, 500, time.UTC)},
		{"month", Month, 2, time.Date(2021, time.February, 15, 10, 30, 45, 500, time.UTC)},
		{"month rolls into next year", Month, 13, time.Date(2022, time.January, 15, 10, 30, 45, 500, time.UTC)},
		{"day", Day, 1, time.Date(2021, time.April, 1, 10, 30, 45, 500, time.UTC)},
		{"day rolls over", Day, 31, time.Date(2021, time.May, 1, 10, 30, 45, 500, time.UTC)},
		{"day of year", DayOfYear, 60, time.Date(2021, time.March, 1, 10, 30, 45, 500, time.UTC)},
		{"hour rolls over", Hour, 25, time.Date(2021, time.April, 16, 1, 30, 45, 500, time.UTC)},
		{"minute", Minute, 0, time.Date(2021, time.April, 15, 10, 0, 45, 500, time.UTC)},
		{"second", Second, 0, time.Date(2021, time.April, 15, 10, 30, 0, 500, time.UTC)},
		{"nanosecond", Nanosecond, 0, time.Date(2021, time.April, 15, 10, 30, 45, 0, time.UTC)},
		{"unknown field", Field(99), 7, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Modify(base, tt.field, tt.value)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestModify_Location(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("JST", 9*3600)
	cal := New(WithLocation(zone))

	// 20:00 UTC is already 05:00 the next day in JST
	got := cal.Modify(time.Date(2020, time.December, 31, 20, 0, 0, 0, time.UTC), Hour, 0)
	assert.True(t, time.Date(2021, time.January, 1, 0, 0, 0, 0, zone).Equal(got), "got %v", got)
	assert.Equal(t, zone, got.Location())
}

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, f := range []Field{Year, Month, Day, DayOfYear, Hour, Minute, Second, Nanosecond} {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseField("Month")
	require.NoError(t, err)
	assert.Equal(t, Month, got)

	_, err = ParseField("week")
	require.Error(t, err)
	assert.Equal(t, "Field(0)", Field(0).String())
}
