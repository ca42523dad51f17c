package wizard

// Step identifies a page of the plan lifecycle wizard. The flow is linear:
// SelectTargetPlan (replacement mode only) → SelectPlanType → ConfigurePlan
// → Review → Saved. Back navigation is always permitted; state is
// reconstructed from the carried-forward parameters, so nothing is re-run.
type Step int

const (
	StepSelectTargetPlan Step = iota
	StepSelectPlanType
	StepConfigurePlan
	StepReview
	StepSaved
)

func (s Step) String() string {
	switch s {
	case StepSelectTargetPlan:
		return "select_target_plan"
	case StepSelectPlanType:
		return "select_plan_type"
	case StepConfigurePlan:
		return "configure_plan"
	case StepReview:
		return "review"
	case StepSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// InitialStep returns the entry step for a traversal: replacing an existing
// plan starts at the target-plan page, adding a new plan skips straight to
// type selection.
func InitialStep(isReplacement bool) Step {
	if isReplacement {
		return StepSelectTargetPlan
	}
	return StepSelectPlanType
}
