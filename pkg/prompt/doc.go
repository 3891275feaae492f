// Package prompt gathers the batch choices (element selection, component
// group, versioning, namespace) either interactively through a survey-backed
// driver or from pre-resolved values. Both adapters satisfy UserChoice so the
// command layer calls the orchestrator the same way in either mode.
package prompt
