// Package engine runs the full write-path pipeline: cascade the submitted
// edits, recompute derived dates, validate, and infer lifecycle status. Every
// step is a pure transform of the case snapshot; the envelope metadata is the
// only thing stamped from the wall clock.
package engine

import (
	"time"

	"github.com/google/uuid"

	"perm-engine/internal/cascade"
	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/jsonpatch"
	"perm-engine/internal/model"
	"perm-engine/internal/status"
	"perm-engine/internal/validation"
)

func Process(req *model.EvaluationRequest) *model.EvaluationResponse {
	start := time.Now()

	submitted := req.Case
	if submitted == nil {
		submitted = &model.CaseData{}
	}

	asOf := start.UTC()
	if req.AsOf != nil {
		if t, ok := dateutil.Parse(*req.AsOf); ok {
			asOf = t
		}
	}

	evaluated := cascade.ApplyMultiple(submitted, req.Changes)
	if evaluated == submitted {
		evaluated = submitted.Clone()
	}

	derived := derive.CalculateDerivedDates(evaluated)
	derive.ApplyDerivedDates(evaluated, derived)

	result := validation.ValidateCase(evaluated, req.Previous, asOf)

	caseStatus, progressStatus := status.CalculateAutoStatus(evaluated, asOf)
	evaluated.CaseStatus = caseStatus
	evaluated.ProgressStatus = progressStatus

	outcome := model.OutcomeSuccess
	if !result.Valid {
		outcome = model.OutcomeFailure
	}

	changes := jsonpatch.DiffCases(submitted, evaluated)
	if changes == nil {
		changes = []model.PatchOp{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.EvaluationResponse{
		EvaluationMetadata: model.EvaluationMetadata{
			EvaluationID:          uuid.New().String(),
			EvaluationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			EvaluationCompletedAt: now.Format(time.RFC3339),
			EvaluationDurationMs:  elapsed.Milliseconds(),
			EvaluationOutcome:     outcome,
		},
		EvaluationResult: model.EvaluationResult{
			Case:           evaluated,
			DerivedDates:   derived,
			Validation:     result,
			CaseStatus:     caseStatus,
			ProgressStatus: progressStatus,
			Changes:        changes,
		},
	}
}
