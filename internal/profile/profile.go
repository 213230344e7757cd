// Package profile computes the diagnostic column fill profile embedded
// in the run summary.
package profile

import (
	"github.com/montanaflynn/stats"

	"gridsift/domain/roster"
	"gridsift/domain/run"
)

// FillRates computes, for each canonical field, the fraction of
// partitioned rows (accepted and rejected alike) carrying a non-empty
// value, plus mean/min/max across the fields. Returns nil when there
// are no rows to profile.
func FillRates(accepted []roster.Record, rejected []roster.Rejected) *run.FillProfile {
	total := len(accepted) + len(rejected)
	if total == 0 {
		return nil
	}

	counts := make(map[roster.Field]int, len(roster.AllFields))
	tally := func(rec roster.Record) {
		if rec.PersonCode != "" {
			counts[roster.FieldPersonCode]++
		}
		if rec.FullName != "" {
			counts[roster.FieldFullName]++
		}
		if rec.Email != "" {
			counts[roster.FieldEmail]++
		}
		if rec.Phone != "" {
			counts[roster.FieldPhone]++
		}
	}
	for _, rec := range accepted {
		tally(rec)
	}
	for _, rej := range rejected {
		tally(rej.Record)
	}

	perField := make(map[roster.Field]float64, len(roster.AllFields))
	rates := make([]float64, 0, len(roster.AllFields))
	for _, field := range roster.AllFields {
		rate := float64(counts[field]) / float64(total)
		perField[field] = rate
		rates = append(rates, rate)
	}

	mean, _ := stats.Mean(rates)
	min, _ := stats.Min(rates)
	max, _ := stats.Max(rates)

	return &run.FillProfile{
		PerField: perField,
		Mean:     mean,
		Min:      min,
		Max:      max,
	}
}
