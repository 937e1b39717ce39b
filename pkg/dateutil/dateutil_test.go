package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeInYear(t *testing.T) {
	tests := []struct {
		name      string
		birthYear int
		year      int
		expected  int
	}{
		{"Birth year itself", 1985, 1985, 0},
		{"Mid-career", 1985, 2026, 41},
		{"Secondary earner", 1987, 2026, 39},
		{"Far horizon", 1985, 2087, 102},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AgeInYear(tt.birthYear, tt.year))
		})
	}
}

func TestYearForAge(t *testing.T) {
	assert.Equal(t, 2050, YearForAge(1985, 65))
	assert.Equal(t, 1985, YearForAge(1985, 0))
}

func TestYearsUntilAge(t *testing.T) {
	tests := []struct {
		name      string
		birthYear int
		fromYear  int
		age       int
		expected  int
	}{
		{"Decades out", 1985, 2026, 65, 24},
		{"Reached this year", 1985, 2050, 65, 0},
		{"Already past", 1985, 2060, 65, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YearsUntilAge(tt.birthYear, tt.fromYear, tt.age))
		})
	}
}

func TestInYearRange(t *testing.T) {
	assert.True(t, InYearRange(2030, 2026, 2035))
	assert.True(t, InYearRange(2026, 2026, 2035), "start is inclusive")
	assert.True(t, InYearRange(2035, 2026, 2035), "end is inclusive")
	assert.False(t, InYearRange(2025, 2026, 2035))
	assert.False(t, InYearRange(2036, 2026, 2035))
}
