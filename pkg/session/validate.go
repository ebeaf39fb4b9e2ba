package session

import (
	"regexp"
	"strings"

	"github.com/leadflow/intake/pkg/models"
)

// User-facing validation messages, in the product locale.
const (
	msgRequired           = "שדה חובה"
	msgInvalidEmail       = "כתובת דוא״ל לא תקינה"
	msgInvalidPhone       = "מספר טלפון לא תקין"
	msgCampaignRequired   = "יש לבחור לפחות קמפיין אחד"
	msgAutomationRequired = "יש לבחור אוטומציה"
	msgStepsRequired      = "יש להוסיף לפחות צעד אחד לתהליך"
	msgStepsUnconfigured  = "יש להגדיר את כל השדות"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d-]{9,}$`)
)

// evaluateStep computes the error map for one step as a pure function of the
// session's inputs. An empty result means the step gate is open.
func evaluateStep(index int, values models.ValueMap, automation *models.Automation, steps []models.WorkflowStep) map[string]string {
	errs := map[string]string{}

	switch index {
	case StepContact:
		for _, id := range []string{FieldFullName, FieldPhone, FieldEmail, FieldBusinessName} {
			if strings.TrimSpace(values.StringOr(id, "")) == "" {
				errs[id] = msgRequired
			}
		}

		if _, present := errs[FieldEmail]; !present {
			if !emailPattern.MatchString(strings.TrimSpace(values.StringOr(FieldEmail, ""))) {
				errs[FieldEmail] = msgInvalidEmail
			}
		}

		if _, present := errs[FieldPhone]; !present {
			if !phonePattern.MatchString(strings.TrimSpace(values.StringOr(FieldPhone, ""))) {
				errs[FieldPhone] = msgInvalidPhone
			}
		}

	case StepCampaigns:
		if selectedSources(values) == nil {
			errs[FieldActiveCampaigns] = msgCampaignRequired
		}

	case StepAutomation:
		if automation == nil {
			errs[ErrorKeyAutomation] = msgAutomationRequired
		}

	case StepWorkflow:
		if len(steps) == 0 {
			errs[ErrorKeySteps] = msgStepsRequired

			break
		}

		for _, step := range steps {
			if !step.Configured() {
				errs[ErrorKeySteps] = msgStepsUnconfigured

				break
			}
		}
	}

	return errs
}

func selectedSources(values models.ValueMap) []string {
	value, ok := values[FieldActiveCampaigns]
	if !ok {
		return nil
	}

	sources, ok := value.AsStringSet()
	if !ok || len(sources) == 0 {
		return nil
	}

	return sources
}
