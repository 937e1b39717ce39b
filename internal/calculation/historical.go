package calculation

import (
	"math"
	"sort"
)

// HistoricalDataPoint represents a single year's return observation.
type HistoricalDataPoint struct {
	Year   int     `json:"year"`
	Return float64 `json:"return"`
}

// HistoricalStatistics provides a statistical summary of the dataset.
type HistoricalStatistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// sp500AnnualReturns holds annual US large-cap total returns (dividends
// reinvested), 1928 through 2024. Source: NYU Stern historical return data.
var sp500AnnualReturns = []HistoricalDataPoint{
	{1928, 0.4381}, {1929, -0.0830}, {1930, -0.2512}, {1931, -0.4384},
	{1932, -0.0864}, {1933, 0.4998}, {1934, -0.0119}, {1935, 0.4674},
	{1936, 0.3194}, {1937, -0.3534}, {1938, 0.2928}, {1939, -0.0110},
	{1940, -0.1067}, {1941, -0.1277}, {1942, 0.1917}, {1943, 0.2506},
	{1944, 0.1903}, {1945, 0.3582}, {1946, -0.0843}, {1947, 0.0520},
	{1948, 0.0570}, {1949, 0.1830}, {1950, 0.3081}, {1951, 0.2368},
	{1952, 0.1815}, {1953, -0.0121}, {1954, 0.5256}, {1955, 0.3260},
	{1956, 0.0744}, {1957, -0.1046}, {1958, 0.4372}, {1959, 0.1206},
	{1960, 0.0034}, {1961, 0.2664}, {1962, -0.0881}, {1963, 0.2261},
	{1964, 0.1642}, {1965, 0.1240}, {1966, -0.0997}, {1967, 0.2380},
	{1968, 0.1081}, {1969, -0.0824}, {1970, 0.0356}, {1971, 0.1422},
	{1972, 0.1876}, {1973, -0.1431}, {1974, -0.2590}, {1975, 0.3700},
	{1976, 0.2383}, {1977, -0.0698}, {1978, 0.0651}, {1979, 0.1852},
	{1980, 0.3174}, {1981, -0.0470}, {1982, 0.2042}, {1983, 0.2234},
	{1984, 0.0615}, {1985, 0.3124}, {1986, 0.1849}, {1987, 0.0581},
	{1988, 0.1654}, {1989, 0.3148}, {1990, -0.0306}, {1991, 0.3023},
	{1992, 0.0749}, {1993, 0.0997}, {1994, 0.0133}, {1995, 0.3720},
	{1996, 0.2268}, {1997, 0.3310}, {1998, 0.2834}, {1999, 0.2089},
	{2000, -0.0903}, {2001, -0.1185}, {2002, -0.2197}, {2003, 0.2836},
	{2004, 0.1074}, {2005, 0.0483}, {2006, 0.1561}, {2007, 0.0548},
	{2008, -0.3655}, {2009, 0.2594}, {2010, 0.1482}, {2011, 0.0210},
	{2012, 0.1589}, {2013, 0.3215}, {2014, 0.1352}, {2015, 0.0138},
	{2016, 0.1177}, {2017, 0.2161}, {2018, -0.0423}, {2019, 0.3121},
	{2020, 0.1802}, {2021, 0.2847}, {2022, -0.1804}, {2023, 0.2606},
	{2024, 0.2502},
}

// HistoricalReturns returns the embedded annual-return table as a bare
// slice of return fractions, in year order.
func HistoricalReturns() []float64 {
	out := make([]float64, len(sp500AnnualReturns))
	for i, p := range sp500AnnualReturns {
		out[i] = p.Return
	}
	return out
}

// HistoricalYearRange returns the first and last year covered by the
// embedded dataset.
func HistoricalYearRange() (int, int) {
	return sp500AnnualReturns[0].Year, sp500AnnualReturns[len(sp500AnnualReturns)-1].Year
}

// CalculateHistoricalStatistics summarizes a return sample.
func CalculateHistoricalStatistics(values []float64) HistoricalStatistics {
	if len(values) == 0 {
		return HistoricalStatistics{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	return HistoricalStatistics{
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(variance),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Count:  len(values),
	}
}
