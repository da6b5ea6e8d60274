// Package cascade propagates a single field edit to its dependent derived
// field. The dependency table is static and single-hop: no target is ever
// itself a source, which init verifies rather than trusting review
// discipline.
package cascade

import (
	"fmt"

	"perm-engine/internal/calendar"
	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/model"
)

// Rule maps one source field to the dependent field it recomputes.
// ExtendOnly rules may only move the target later, never earlier.
type Rule struct {
	Source     string
	Target     string
	Transform  func(source string) *string
	ExtendOnly bool
}

var rules = []Rule{
	{
		Source:    model.FieldPWDDeterminationDate,
		Target:    model.FieldPWDExpirationDate,
		Transform: derive.PWDExpiration,
	},
	{
		Source: model.FieldNoticeOfFilingStartDate,
		Target: model.FieldNoticeOfFilingEndDate,
		Transform: func(s string) *string {
			return calendar.AddBusinessDays(s, derive.NoticeOfFilingBusinessDays)
		},
		ExtendOnly: true,
	},
	{
		Source: model.FieldJobOrderStartDate,
		Target: model.FieldJobOrderEndDate,
		Transform: func(s string) *string {
			return dateutil.AddDays(&s, derive.JobOrderMinimumDays)
		},
		ExtendOnly: true,
	},
	{
		Source: model.FieldETA9089CertificationDate,
		Target: model.FieldETA9089ExpirationDate,
		Transform: func(s string) *string {
			return dateutil.AddDays(&s, derive.ETA9089ValidityDays)
		},
	},
	{
		// RFI due dates are a strict function of receipt, never extend-only.
		Source: model.FieldRFIReceivedDate,
		Target: model.FieldRFIDueDate,
		Transform: func(s string) *string {
			return dateutil.AddDays(&s, derive.RFIResponseDays)
		},
	},
}

func init() {
	if err := CheckRules(rules); err != nil {
		panic(err)
	}
}

// CheckRules rejects tables where a cascade could chain or loop: duplicate
// sources, and any path from a target back into a source. A depth-first walk
// over the source->target edges finds cycles the single-hop convention would
// otherwise only catch in review.
func CheckRules(table []Rule) error {
	edges := make(map[string]string, len(table))
	for _, r := range table {
		if _, dup := edges[r.Source]; dup {
			return fmt.Errorf("cascade: duplicate rule for source %s", r.Source)
		}
		edges[r.Source] = r.Target
	}
	for _, r := range table {
		if _, chains := edges[r.Target]; chains {
			return fmt.Errorf("cascade: target %s is also a source, table is not single-hop", r.Target)
		}
	}
	for start := range edges {
		seen := map[string]bool{start: true}
		for cur, ok := edges[start]; ok; cur, ok = edges[cur] {
			if seen[cur] {
				return fmt.Errorf("cascade: cycle through %s", cur)
			}
			seen[cur] = true
		}
	}
	return nil
}

// Apply writes change onto a copy of the case and propagates it through the
// rule table: a nil or boolean value clears the dependent target; a date
// value recomputes it, subject to the rule's extend-only policy.
func Apply(c *model.CaseData, change model.FieldChange) *model.CaseData {
	out := c.Clone()
	setField(out, change.Field, change.Value)

	rule, ok := ruleFor(change.Field)
	if !ok {
		return out
	}

	src, isDate := change.Value.(string)
	if !isDate {
		setDate(out, rule.Target, nil)
		return out
	}

	candidate := rule.Transform(src)
	if rule.ExtendOnly {
		current := getDate(out, rule.Target)
		if candidate == nil || (current != nil && *candidate <= *current) {
			return out
		}
	}
	setDate(out, rule.Target, candidate)
	return out
}

// ApplyMultiple folds a batch of independent edits left to right. The table
// is single-hop, so sequential application needs no fixed-point iteration.
func ApplyMultiple(c *model.CaseData, changes []model.FieldChange) *model.CaseData {
	out := c
	for _, change := range changes {
		out = Apply(out, change)
	}
	return out
}

func ruleFor(field string) (Rule, bool) {
	for _, r := range rules {
		if r.Source == field {
			return r, true
		}
	}
	return Rule{}, false
}

// setField writes an arbitrary edit onto the record. Unknown field names are
// ignored; the host validates field names before calling in.
func setField(c *model.CaseData, field string, value any) {
	if field == model.FieldIsProfessionalOccupation {
		if b, ok := value.(bool); ok {
			c.IsProfessionalOccupation = b
		}
		return
	}
	if s, ok := value.(string); ok {
		setDate(c, field, &s)
		return
	}
	setDate(c, field, nil)
}

func setDate(c *model.CaseData, field string, v *string) {
	if slot := dateSlot(c, field); slot != nil {
		*slot = v
	}
}

func getDate(c *model.CaseData, field string) *string {
	if slot := dateSlot(c, field); slot != nil {
		return *slot
	}
	return nil
}

func dateSlot(c *model.CaseData, field string) **string {
	switch field {
	case model.FieldPWDFilingDate:
		return &c.PWDFilingDate
	case model.FieldPWDDeterminationDate:
		return &c.PWDDeterminationDate
	case model.FieldPWDExpirationDate:
		return &c.PWDExpirationDate
	case model.FieldSundayAdFirstDate:
		return &c.SundayAdFirstDate
	case model.FieldSundayAdSecondDate:
		return &c.SundayAdSecondDate
	case model.FieldJobOrderStartDate:
		return &c.JobOrderStartDate
	case model.FieldJobOrderEndDate:
		return &c.JobOrderEndDate
	case model.FieldNoticeOfFilingStartDate:
		return &c.NoticeOfFilingStartDate
	case model.FieldNoticeOfFilingEndDate:
		return &c.NoticeOfFilingEndDate
	case model.FieldAdditionalRecruitmentEndDate:
		return &c.AdditionalRecruitmentEndDate
	case model.FieldETA9089FilingDate:
		return &c.ETA9089FilingDate
	case model.FieldETA9089CertificationDate:
		return &c.ETA9089CertificationDate
	case model.FieldETA9089ExpirationDate:
		return &c.ETA9089ExpirationDate
	case model.FieldI140FilingDate:
		return &c.I140FilingDate
	case model.FieldI140ApprovalDate:
		return &c.I140ApprovalDate
	case model.FieldI140DenialDate:
		return &c.I140DenialDate
	case model.FieldRFIReceivedDate:
		return &c.RFIReceivedDate
	case model.FieldRFIDueDate:
		return &c.RFIDueDate
	case model.FieldRFISubmittedDate:
		return &c.RFISubmittedDate
	case model.FieldRFEReceivedDate:
		return &c.RFEReceivedDate
	case model.FieldRFEDueDate:
		return &c.RFEDueDate
	case model.FieldRFESubmittedDate:
		return &c.RFESubmittedDate
	}
	return nil
}
