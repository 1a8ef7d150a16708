// Package model defines the minimal model-invocation contract the pipeline
// depends on, a registry that resolves user-selected model ids to concrete
// implementations, and an in-memory mock for tests and examples.
//
// Provider adapters live in the subpackages model/openai, model/anthropic and
// model/gemini. Adapters perform exactly one completion request per Invoke
// call; retry policy, if any, belongs to the adapter or transport layer, never
// to the orchestration core.
package model
