// Package web provides the HTTP surface of the intake API.
package web

import (
	"github.com/leadflow/intake/pkg/submission"
)

// GenerateMessageResponse carries the generated marketing copy.
type GenerateMessageResponse struct {
	Message string `json:"message"`
}

// SubmitIntakeResponse is returned after a successful submission. The stage
// report is included so operators can spot tolerated auxiliary failures.
type SubmitIntakeResponse struct {
	ClientID    string            `json:"client_id"`
	ClientToken string            `json:"client_token"`
	WorkflowID  string            `json:"workflow_id,omitempty"`
	Report      submission.Report `json:"report"`
}
