// Package prompt assembles agent prompts from configuration blocks and run
// materials. Assembly is pure: no I/O, no side effects, byte-identical output
// for identical input. User-supplied text is embedded verbatim — newlines and
// formatting are part of the material's meaning in document generation, so
// nothing is escaped or truncated here.
//
// Every optional upstream input has a fixed substitution marker so that a
// downstream prompt never carries an ambiguous empty section.
package prompt
