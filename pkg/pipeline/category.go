package pipeline

import "strconv"

// Category is the qualitative band of a score.
type Category string

const (
	Bad     Category = "Bad"
	Regular Category = "Regular"
	Good    Category = "Good"
)

// Thresholds separating the bands. A score equal to a threshold belongs to
// the higher band.
const (
	RegularFrom = 5.0
	GoodFrom    = 7.0
)

// Categorize maps a score to its band: [-inf,5) Bad, [5,7) Regular, [7,inf) Good.
func Categorize(score float64) Category {
	switch {
	case score < RegularFrom:
		return Bad
	case score < GoodFrom:
		return Regular
	default:
		return Good
	}
}

var spanish = map[Category]string{Bad: "Malo", Regular: "Regular", Good: "Bueno"}

// Label returns the display label for lang ("es" or anything else for English).
func (c Category) Label(lang string) string {
	if lang == "es" {
		if s, ok := spanish[c]; ok {
			return s
		}
	}
	return string(c)
}

// Round2 rounds to two decimal places using the exact binary value of x, so
// 2.675 (stored just below) becomes 2.67.
func Round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}
