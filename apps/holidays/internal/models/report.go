package models

import "slices"

// YearOutcome is the result of scraping a single year.
type YearOutcome struct {
	Year    int
	Added   int
	Skipped int
	Err     error
}

func (outcome YearOutcome) Failed() bool {
	return outcome.Err != nil
}

type ScrapeReport struct {
	Outcomes []YearOutcome
}

func (report ScrapeReport) Added() int {
	total := 0
	for _, outcome := range report.Outcomes {
		total += outcome.Added
	}
	return total
}

func (report ScrapeReport) Skipped() int {
	total := 0
	for _, outcome := range report.Outcomes {
		total += outcome.Skipped
	}
	return total
}

func (report ScrapeReport) Failed() []YearOutcome {
	return slices.DeleteFunc(
		slices.Clone(report.Outcomes),
		func(outcome YearOutcome) bool { return !outcome.Failed() },
	)
}
