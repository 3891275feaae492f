// Package orchestrator wires the manifest → classifier → fragment renderer →
// template resolver → writer pipeline. It generates one artifact set per
// selected element, strictly one element after another, and reports a result
// for each so a failing element never stops the rest of the batch.
package orchestrator
