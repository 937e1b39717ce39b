package dateutil

// The projection engine works at annual granularity: a person's age in a
// given calendar year is simply year minus birth year, ignoring the exact
// birthday within the year.

// AgeInYear calculates a person's age during a given calendar year
func AgeInYear(birthYear, year int) int {
	return year - birthYear
}

// YearForAge returns the calendar year in which a person reaches a given age
func YearForAge(birthYear, age int) int {
	return birthYear + age
}

// YearsUntilAge returns how many whole years remain until the person reaches
// the given age, measured from the given calendar year. Returns 0 when the
// age has already been reached.
func YearsUntilAge(birthYear, fromYear, age int) int {
	years := YearForAge(birthYear, age) - fromYear
	if years < 0 {
		return 0
	}
	return years
}

// InYearRange reports whether year falls in the inclusive range [start, end]
func InYearRange(year, start, end int) bool {
	return year >= start && year <= end
}
