package submission

// Stage identifies one persistence sub-step of a submission run.
type Stage string

const (
	StageClient          Stage = "client"
	StageCampaign        Stage = "campaign"
	StageCampaignSummary Stage = "campaign_summary"
	StageWorkflow        Stage = "workflow"
	StageWorkflowDetail  Stage = "workflow_detail"
	StageWorkflowSteps   Stage = "workflow_steps"
	StagePublish         Stage = "publish"
)

// StageResult is the outcome of one sub-step. Failures of auxiliary stages
// are carried here instead of being swallowed into logs.
type StageResult struct {
	Stage  Stage  `json:"stage"`
	Target string `json:"target,omitempty"` // e.g. the campaign source for per-source writes
	Err    error  `json:"-"`
	Error  string `json:"error,omitempty"`
}

func (r StageResult) Failed() bool {
	return r.Err != nil
}

// Report aggregates every stage outcome of a submission run.
type Report struct {
	Stages []StageResult `json:"stages"`
}

func (r *Report) record(stage Stage, target string, err error) {
	result := StageResult{Stage: stage, Target: target, Err: err}
	if err != nil {
		result.Error = err.Error()
	}

	r.Stages = append(r.Stages, result)
}

// Failed reports whether any result for the given stage carries an error.
func (r *Report) Failed(stage Stage) bool {
	for _, result := range r.Stages {
		if result.Stage == stage && result.Failed() {
			return true
		}
	}

	return false
}

// FailureCount returns the number of failed stage results.
func (r *Report) FailureCount() int {
	count := 0

	for _, result := range r.Stages {
		if result.Failed() {
			count++
		}
	}

	return count
}
