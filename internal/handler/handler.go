// Package handler is the fasthttp boundary around the engine. It is the only
// layer that touches the wall clock or performs I/O; everything it calls is a
// pure function of the request body.
package handler

import (
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"perm-engine/internal/calendar"
	"perm-engine/internal/cascade"
	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/engine"
	"perm-engine/internal/model"
	"perm-engine/internal/status"
	"perm-engine/internal/validation"
)

// New builds the request handler routing the engine's call sites.
func New(logger *zap.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())

		if path == "/v1/holidays" {
			handleHolidays(ctx)
			return
		}

		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req model.EvaluationRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if req.Case == nil {
			req.Case = &model.CaseData{}
		}

		switch path {
		case "/v1/evaluate":
			resp := engine.Process(&req)
			logger.Info("case evaluated",
				zap.String("evaluation_id", resp.EvaluationMetadata.EvaluationID),
				zap.String("outcome", resp.EvaluationMetadata.EvaluationOutcome),
				zap.Int("errors", len(resp.EvaluationResult.Validation.Errors)),
				zap.Int("warnings", len(resp.EvaluationResult.Validation.Warnings)))
			writeJSON(ctx, resp)
		case "/v1/cascade":
			writeJSON(ctx, cascade.ApplyMultiple(req.Case, req.Changes))
		case "/v1/derived-dates":
			writeJSON(ctx, derive.CalculateDerivedDates(req.Case))
		case "/v1/validate":
			writeJSON(ctx, validation.ValidateCase(req.Case, req.Previous, asOf(&req)))
		case "/v1/status":
			caseStatus, progressStatus := status.CalculateAutoStatus(req.Case, asOf(&req))
			writeJSON(ctx, map[string]any{
				"case_status":     caseStatus,
				"progress_status": progressStatus,
			})
		default:
			writeError(ctx, fasthttp.StatusNotFound, "Unknown path "+path)
		}
	}
}

// asOf resolves the reference date, defaulting to the wall clock here at the
// outermost boundary only.
func asOf(req *model.EvaluationRequest) time.Time {
	if req.AsOf != nil {
		if t, ok := dateutil.Parse(*req.AsOf); ok {
			return t
		}
	}
	return time.Now().UTC()
}

func handleHolidays(ctx *fasthttp.RequestCtx) {
	year, err := strconv.Atoi(string(ctx.QueryArgs().Peek("year")))
	if err != nil || year < 1900 || year > 2200 {
		writeError(ctx, fasthttp.StatusBadRequest, "Query parameter year must be a valid year")
		return
	}
	writeJSON(ctx, calendar.FederalHolidays(year))
}

func writeJSON(ctx *fasthttp.RequestCtx, v any) {
	ctx.SetContentType("application/json")
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, code int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(code)
	body, _ := json.Marshal(model.ErrorResponse{Status: code, Message: message})
	ctx.SetBody(body)
}
