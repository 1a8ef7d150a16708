// Package core defines the shared vocabulary of the drafting pipeline:
// runs and stage results, agent configuration, the materials bundle,
// the error taxonomy and the telemetry / progress contracts.
//
// Types here are deliberately free of orchestration logic so that the
// prompt, agent and pipeline packages can depend on them without cycles.
// A PipelineRun exclusively owns its StageResults; AgentConfig values are
// read-only snapshots referenced by runs; a MaterialsBundle belongs to the
// run that consumed it and is discarded with it.
package core
