package core

// AgentConfig is the static, user-editable configuration for one agent role.
// Configs are passed by value: the pipeline snapshots them at run start, so
// edits made while a run is in flight only affect subsequent runs.
type AgentConfig struct {
	// Persona is the role description injected at the top of every prompt.
	Persona string `yaml:"persona"`
	// Task holds the free-text working instructions for the role.
	Task string `yaml:"task"`
	// OutputFormat describes the expected shape of the generated text.
	OutputFormat string `yaml:"output_format"`
	// ModelID selects the backing model from the registry.
	ModelID string `yaml:"model_id"`
}

// MaterialsBundle is the input corpus for one run: the extracted text of the
// mandatory primary fact sheet, zero or more supporting document texts, and
// optional free-form writing requirements merged verbatim into the synthesis
// prompt.
type MaterialsBundle struct {
	PrimaryText          string
	SupportingTexts      []string
	FreeformRequirements string
}

// HasSupportingDocs reports whether any supporting document text is present.
func (m MaterialsBundle) HasSupportingDocs() bool { return len(m.SupportingTexts) > 0 }

// Validate checks the preconditions a run cannot start without.
func (m MaterialsBundle) Validate() error {
	if m.PrimaryText == "" {
		return &ConfigurationError{Missing: "primary document text"}
	}
	return nil
}
