// Package pipeline implements the orchestration core: a generic engine that
// drives an ordered chain of agent stages with data dependencies between
// them, plus the two preset topologies built on it (resume drafting and
// recommendation-letter drafting).
//
// Execution is strictly sequential by design: a stage's prompt must observe
// the complete output of the previous stage (or a defined placeholder), never
// a partial one, so there is no fan-out and no streaming consumption. A stage
// failure is terminal for the automatic chain — prior stage results stay on
// the run for inspection, and a manual retry starts a fresh run from scratch.
package pipeline
