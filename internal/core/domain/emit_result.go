package domain

// CompiledArtifact is the output of a successful emit for one file.
type CompiledArtifact struct {
	Code            string `msgpack:"code"`
	SourceMap       string `msgpack:"source_map"`
	DeclarationText string `msgpack:"declaration_text"`
}

// EmitResult is the tagged outcome of an emit request: either a compiled
// artifact or a skipped emit with the diagnostics that caused it. A skipped
// emit must never be cached as a success.
type EmitResult struct {
	artifact    *CompiledArtifact
	diagnostics []Diagnostic
}

// EmitSuccess creates a successful emit result.
func EmitSuccess(artifact CompiledArtifact) EmitResult {
	return EmitResult{artifact: &artifact}
}

// EmitSkipped creates a failed emit result carrying the diagnostics the
// compiler reported when it refused to produce output.
func EmitSkipped(diagnostics []Diagnostic) EmitResult {
	return EmitResult{diagnostics: diagnostics}
}

// Skipped reports whether the compiler produced no output.
func (r EmitResult) Skipped() bool {
	return r.artifact == nil
}

// Artifact returns the compiled artifact and whether one is present.
func (r EmitResult) Artifact() (CompiledArtifact, bool) {
	if r.artifact == nil {
		return CompiledArtifact{}, false
	}
	return *r.artifact, true
}

// Diagnostics returns the diagnostics attached to a skipped emit.
func (r EmitResult) Diagnostics() []Diagnostic {
	return r.diagnostics
}
