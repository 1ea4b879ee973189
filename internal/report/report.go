// Package report derives the read-side views over the answer ledger and
// result store: percentage formatting, CSV export, and the administrator
// score chart.
package report

import (
	"fmt"
)

// Percentage formats score/total as a percentage with one decimal place.
// A zero total yields "0%" rather than dividing by zero.
func Percentage(score, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(score)/float64(total)*100)
}
