package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"vehicle-inspection-api/models"
)

// ErrUnknownRole is returned when a patch is attempted with a role outside
// the fixed admin/reviewer pair.
var ErrUnknownRole = errors.New("unknown role")

// InspectionPatch is a sparse field set for one inspection update. Values
// arrive as raw text straight from the request; nil means "not submitted".
type InspectionPatch struct {
	CostEstimate    *string `form:"cost_estimate" json:"cost_estimate"`
	AcceptedCost    *string `form:"accepted_cost" json:"accepted_cost"`
	CommentAdmin    *string `form:"comment_admin" json:"comment_admin"`
	CommentReviewer *string `form:"comment_reviewer" json:"comment_reviewer"`
	StatusAdmin     *string `form:"status_admin" json:"status_admin"`
	StatusReviewer  *string `form:"status_reviewer" json:"status_reviewer"`
}

// ApplyRolePatch applies the fields of patch that the acting role owns and
// returns the column names actually written. Fields owned by the other role
// are ignored. A status value outside its enumeration is silently retained
// (prior value kept, not reported as applied) - that is the contract, not an
// accident of validation. A non-numeric cost aborts before any field is
// touched, so the update stays atomic per request.
func ApplyRolePatch(inspection *models.Inspection, role string, patch InspectionPatch) ([]string, error) {
	switch role {
	case RoleAdmin, RoleReviewer:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	applied := make([]string, 0, 3)

	if role == RoleAdmin {
		cost, costSet, err := parseCostField(patch.CostEstimate)
		if err != nil {
			return nil, err
		}
		if costSet {
			inspection.CostEstimate = cost
			applied = append(applied, "cost_estimate")
		}
		if patch.CommentAdmin != nil {
			inspection.CommentAdmin = normalizeComment(*patch.CommentAdmin)
			applied = append(applied, "comment_admin")
		}
		if patch.StatusAdmin != nil && models.ValidAdminStatus(*patch.StatusAdmin) {
			inspection.StatusAdmin = *patch.StatusAdmin
			applied = append(applied, "status_admin")
		}
		return applied, nil
	}

	cost, costSet, err := parseCostField(patch.AcceptedCost)
	if err != nil {
		return nil, err
	}
	if costSet {
		inspection.AcceptedCost = cost
		applied = append(applied, "accepted_cost")
	}
	if patch.CommentReviewer != nil {
		inspection.CommentReviewer = normalizeComment(*patch.CommentReviewer)
		applied = append(applied, "comment_reviewer")
	}
	if patch.StatusReviewer != nil && models.ValidReviewerStatus(*patch.StatusReviewer) {
		inspection.StatusReviewer = *patch.StatusReviewer
		applied = append(applied, "status_reviewer")
	}
	return applied, nil
}

// parseCostField interprets a submitted cost value. Empty text clears the
// stored value; anything non-numeric is an error.
func parseCostField(raw *string) (*int, bool, error) {
	if raw == nil {
		return nil, false, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, true, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, false, fmt.Errorf("invalid cost value %q", trimmed)
	}
	return &value, true, nil
}

func normalizeComment(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
