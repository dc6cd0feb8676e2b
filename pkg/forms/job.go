package forms

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shiptrack/inputguard/pkg/hygiene"
	"github.com/shiptrack/inputguard/pkg/sanitizer"
	"github.com/shiptrack/inputguard/pkg/validator"
)

// JobAction is something a driver can do with an assigned job.
type JobAction string

const (
	JobActionStart    JobAction = "start"
	JobActionComplete JobAction = "complete"
	JobActionCancel   JobAction = "cancel"
	JobActionView     JobAction = "view"
)

// KeyJobConfirm is the catalog key for the confirmation prompt; it takes
// %{action} and %{job_id}.
const KeyJobConfirm = "driver.job.confirm"

// JobActions lists the accepted actions.
func JobActions() []JobAction {
	return []JobAction{JobActionStart, JobActionComplete, JobActionCancel, JobActionView}
}

// Valid reports whether a is one of JobActions.
func (a JobAction) Valid() bool {
	for _, known := range JobActions() {
		if a == known {
			return true
		}
	}
	return false
}

// JobRequest is a driver's action on a job.
type JobRequest struct {
	JobID  string
	Action JobAction
}

var jobIDField = fieldCheck{
	name:        "job_id",
	kind:        hygiene.FieldShipmentID,
	required:    "Invalid job ID",
	requiredKey: "driver.job_id.invalid",
	invalid:     "Invalid job ID",
	invalidKey:  "driver.job_id.invalid",
}

// ValidateJobAction checks the job id, which shares the shipment id shape,
// and that the action is one of JobActions. Actions are matched exactly
// after trimming. The returned request carries the sanitized values.
func ValidateJobAction(ctx context.Context, g *hygiene.Guard, req JobRequest) (JobRequest, error) {
	var errs validator.ValidationErrors

	out := JobRequest{
		JobID:  jobIDField.check(ctx, g, req.JobID, &errs),
		Action: JobAction(sanitizer.Trim(string(req.Action))),
	}

	if !out.Action.Valid() {
		errs.Add(validator.ValidationError{
			Field:          "action",
			Message:        "Invalid action",
			TranslationKey: "driver.action.invalid",
			TranslationValues: map[string]any{
				"field": "action",
			},
			Err: hygiene.ErrPatternMismatch,
		})
	}
	return out, result(errs)
}

// ConfirmArgs returns the placeholder pairs for KeyJobConfirm, with the
// action title-cased: "start" on JOB001 renders as "Start job JOB001?".
func (r JobRequest) ConfirmArgs() []string {
	return []string{
		"action", cases.Title(language.English).String(string(r.Action)),
		"job_id", r.JobID,
	}
}
