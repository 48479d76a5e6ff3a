package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRaw(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Coordinate
		match    bool
	}{
		{
			name:     "comma and space",
			input:    "22.7009146, 88.3412271",
			expected: Coordinate{Lat: 22.7009146, Lng: 88.3412271},
			match:    true,
		},
		{
			name:     "no space",
			input:    "22.5,88.5",
			expected: Coordinate{Lat: 22.5, Lng: 88.5},
			match:    true,
		},
		{
			name:     "negative values and extra whitespace",
			input:    "-33.8688,    -151.2093",
			expected: Coordinate{Lat: -33.8688, Lng: -151.2093},
			match:    true,
		},
		{
			name:  "integers do not match",
			input: "40, -70",
		},
		{
			name:  "one integer does not match",
			input: "40.5, -70",
		},
		{
			name:  "space before comma",
			input: "40.5 , -70.1",
		},
		{
			name:  "trailing text",
			input: "40.5, -70.1 somewhere",
		},
		{
			name:  "plus sign",
			input: "+40.5, 70.1",
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchRaw(tt.input)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.match, IsRaw(tt.input))

			if tt.match {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestMatchRaw_RoundTrip(t *testing.T) {
	values := []Coordinate{
		{Lat: 12.971599, Lng: 77.594566},
		{Lat: -0.5, Lng: 0.25},
		{Lat: 89.999999999, Lng: -179.123456789012},
		{Lat: 1.0000001, Lng: -1e-7},
		{Lat: 0.1, Lng: 0.2},
		{Lat: 123456.789, Lng: -987654.321},
	}

	for _, c := range values {
		t.Run(c.String(), func(t *testing.T) {
			got, ok := MatchRaw(c.String())
			require.True(t, ok, "formatted pair %q should match", c.String())
			assert.Equal(t, c, got)
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"12.5", 12.5, true},
		{"-12.5", -12.5, true},
		{"  7.25", 7.25, true},
		{"12.5abc", 12.5, true},
		{"88.4146&zoom=15", 88.4146, true},
		{"-122.417;u=35", -122.417, true},
		{"+3", 3, true},
		{".5", 0.5, true},
		{"1e3", 1000, true},
		{"1e", 1, true},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Infinity", 0, false},
		{"1e999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSplitPair(t *testing.T) {
	c, ok := SplitPair("47.6~-122.3", "~")
	require.True(t, ok)
	assert.Equal(t, Coordinate{Lat: 47.6, Lng: -122.3}, c)

	_, ok = SplitPair("47.6", ",")
	assert.False(t, ok, "single field")

	_, ok = SplitPair("", ",")
	assert.False(t, ok, "empty value")

	_, ok = SplitPair("north,south", ",")
	assert.False(t, ok, "non-numeric fields")
}

func TestCoordinate(t *testing.T) {
	c := New(22.5511, 88.4146)
	assert.Equal(t, "22.5511, 88.4146", c.String())
	assert.True(t, c.InRange())
	assert.True(t, c.IsFinite())

	assert.False(t, New(91, 0).InRange())
	assert.False(t, New(0, -180.5).InRange())
	assert.False(t, New(math.NaN(), 0).IsFinite())
	assert.Equal(t, "0.0000001", FormatNumber(1e-7))
}
