// Package engine composes the identity validator, record deduplicator,
// anomaly scorer, and report builder into one caller-owned instance.
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fortis-br/integrity-engine/anomaly"
	"github.com/fortis-br/integrity-engine/dedup"
	"github.com/fortis-br/integrity-engine/internal/logging"
	"github.com/fortis-br/integrity-engine/internal/observability"
	"github.com/fortis-br/integrity-engine/models"
	"github.com/fortis-br/integrity-engine/report"
	"github.com/fortis-br/integrity-engine/validation"
)

// Engine is the vote integrity and anomaly detection engine. It holds
// configuration only; every call works on its own input and allocates
// its own output, so one Engine is safe for concurrent use across
// disjoint scopes.
type Engine struct {
	opts    Options
	night   map[int]struct{}
	logger  *logging.SafeLogger
	builder *report.Builder
}

// New builds an engine with the given options, failing fast on any
// out-of-range value. A nil logger disables logging.
func New(opts Options, logger *logging.SafeLogger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine options: %w", err)
	}
	return &Engine{
		opts:    opts,
		night:   opts.nightSet(),
		logger:  logger,
		builder: report.NewBuilder(opts.ScoreBands, opts.FloorScore),
	}, nil
}

// RollCleanResult is the outcome of cleaning a voter roll.
type RollCleanResult struct {
	Kept    []models.VoterRecord
	Summary report.RollSummary
}

// CleanVoterRoll validates every voter record and removes duplicate
// national IDs, first record wins. Invalid records are excluded and
// counted, never silently dropped. The input slice is not mutated.
func (e *Engine) CleanVoterRoll(ctx context.Context, voters []models.VoterRecord) (*RollCleanResult, error) {
	_, _, done := observability.TraceOperation(ctx, "engine.CleanVoterRoll", map[string]interface{}{
		"records": len(voters),
	})
	defer done()

	start := time.Now()
	now := time.Now().UTC()

	valid := make([]models.VoterRecord, 0, len(voters))
	invalid := 0
	for i := range voters {
		result := validation.ValidateVoter(&voters[i], now)
		if !result.IsValid {
			invalid++
			e.logger.Debug("voter record failed validation",
				zap.String("national_id", observability.MaskCPF(validation.NormalizeNationalID(voters[i].NationalID))),
				zap.Int("field_errors", len(result.Errors)))
			continue
		}
		valid = append(valid, voters[i])
	}

	deduped := dedup.DedupeVoters(valid)

	summary := report.RollSummary{
		TotalRecords:      len(voters),
		KeptRecords:       len(deduped.Kept),
		RemovedDuplicates: deduped.RemovedCount,
		RemovedInvalid:    invalid,
		ErrorsFound:       invalid,
		QualityScore:      report.QualityScore(len(voters), len(deduped.Kept), invalid),
		RollHash:          validation.RollHash(deduped.Kept),
		GeneratedAt:       now,
	}
	if invalid > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("removed %d records failing identity validation", invalid))
	}
	if deduped.RemovedCount > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("removed %d duplicate records by national_id", deduped.RemovedCount))
	}

	observability.RollRecordsRemoved.WithLabelValues("invalid").Add(float64(invalid))
	observability.RollRecordsRemoved.WithLabelValues("duplicate").Add(float64(deduped.RemovedCount))
	observability.BatchDuration.WithLabelValues("clean_voter_roll").Observe(time.Since(start).Seconds())

	e.logger.Info("voter roll cleaned",
		zap.Int("total", len(voters)),
		zap.Int("kept", len(deduped.Kept)),
		zap.Int("invalid", invalid),
		zap.Int("duplicates", deduped.RemovedCount),
		zap.Float64("quality_score", summary.QualityScore))

	return &RollCleanResult{Kept: deduped.Kept, Summary: summary}, nil
}

// AnalyzeVotes scores a batch of votes in heuristic mode and returns
// its integrity report. An empty batch is not an error: it yields a
// clean report with a security score of 100.
func (e *Engine) AnalyzeVotes(ctx context.Context, scope string, votes []models.VoteRecord) (*models.IntegrityReport, error) {
	_, _, done := observability.TraceOperation(ctx, "engine.AnalyzeVotes", map[string]interface{}{
		"scope":   scope,
		"records": len(votes),
	})
	defer done()

	start := time.Now()
	ex := e.extract(votes)
	assessment := anomaly.EvaluateHeuristic(ex, e.opts.ZoneConcentrationQuantile)
	rep := e.finishReport(scope, assessment, "heuristic")

	observability.BatchDuration.WithLabelValues("analyze_votes").Observe(time.Since(start).Seconds())
	return rep, nil
}

// FitBaseline fits a statistical boundary over a reference batch for
// later use with AnalyzeVotesWithBaseline. The reference is assumed to
// be mostly clean; the configured contamination rate bounds how much of
// it the fitted threshold would flag.
func (e *Engine) FitBaseline(ctx context.Context, reference []models.VoteRecord) (*anomaly.Baseline, error) {
	_, _, done := observability.TraceOperation(ctx, "engine.FitBaseline", map[string]interface{}{
		"records": len(reference),
	})
	defer done()

	ex := e.extract(reference)
	baseline, err := anomaly.FitBaseline(ex.Features, e.opts.ContaminationRate)
	if err != nil {
		return nil, fmt.Errorf("fit baseline: %w", err)
	}

	e.logger.Info("baseline fitted",
		zap.Int("samples", baseline.Samples),
		zap.Float64("threshold", baseline.Threshold),
		zap.Float64("contamination", baseline.Contamination))
	return baseline, nil
}

// AnalyzeVotesWithBaseline scores a batch in statistical outlier mode
// against a previously fitted baseline.
func (e *Engine) AnalyzeVotesWithBaseline(ctx context.Context, scope string, votes []models.VoteRecord, baseline *anomaly.Baseline) (*models.IntegrityReport, error) {
	if baseline == nil {
		return nil, models.ErrBaselineRequired
	}

	_, _, done := observability.TraceOperation(ctx, "engine.AnalyzeVotesWithBaseline", map[string]interface{}{
		"scope":   scope,
		"records": len(votes),
	})
	defer done()

	start := time.Now()
	ex := e.extract(votes)
	assessment := anomaly.EvaluateBaseline(ex, baseline, e.opts.ZoneConcentrationQuantile)
	rep := e.finishReport(scope, assessment, "baseline")

	observability.BatchDuration.WithLabelValues("analyze_votes_baseline").Observe(time.Since(start).Seconds())
	return rep, nil
}

// AnalyzePatterns summarizes voting patterns for a batch. Descriptive
// only; it produces no findings.
func (e *Engine) AnalyzePatterns(ctx context.Context, votes []models.VoteRecord) *report.Patterns {
	_, _, done := observability.TraceOperation(ctx, "engine.AnalyzePatterns", map[string]interface{}{
		"records": len(votes),
	})
	defer done()

	return report.AnalyzePatterns(votes)
}

// FindDuplicateVotes exposes the deduplicator with the engine's
// configured grouping key. The result is the sole source of truth for
// DUPLICATE findings.
func (e *Engine) FindDuplicateVotes(votes []models.VoteRecord) map[string][]string {
	return dedup.FindDuplicateVotes(votes, e.opts.DuplicateGroupingKey)
}

func (e *Engine) extract(votes []models.VoteRecord) anomaly.Extraction {
	duplicates := dedup.FindDuplicateVotes(votes, e.opts.DuplicateGroupingKey)
	for voter, voteIDs := range duplicates {
		masked := observability.MaskVoterKey(voter)
		if e.opts.DuplicateGroupingKey == dedup.GroupByNationalID {
			masked = observability.MaskCPF(voter)
		}
		e.logger.Debug("duplicate vote group",
			zap.String("voter_key", masked),
			zap.Int("votes", len(voteIDs)))
	}
	ex := anomaly.Extract(votes, duplicates, e.opts.DuplicateGroupingKey, e.night, e.opts.ElectionWindow)
	if ex.Skipped > 0 {
		observability.RecordsSkipped.Add(float64(ex.Skipped))
	}
	return ex
}

func (e *Engine) finishReport(scope string, assessment anomaly.Assessment, mode string) *models.IntegrityReport {
	rep := e.builder.Build(scope, assessment, time.Now().UTC())

	observability.BatchesAnalyzed.WithLabelValues(mode, "ok").Inc()
	for _, f := range rep.Anomalies {
		observability.AnomaliesFound.WithLabelValues(string(f.Category), string(f.Severity)).Inc()
	}

	e.logger.Info("vote batch analyzed",
		zap.String("scope", rep.Scope),
		zap.String("mode", mode),
		zap.Int("total_records", rep.TotalRecords),
		zap.Int("anomalies", len(rep.Anomalies)),
		zap.Int("skipped", rep.SkippedRecords),
		zap.Float64("security_score", rep.SecurityScore))
	return rep
}
