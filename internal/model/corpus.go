package model

// CorpusState tracks the progress of the deterministic sweep over one corpus
// item. It is owned by a single engine.
type CorpusState struct {
	// FieldsFuzzed counts scalar visits in the current pass.
	FieldsFuzzed int
	Mode         MutationMode
	// TargetedFieldIdx is the scalar that is live in deterministic passes.
	TargetedFieldIdx int
	// TargetTotalFields is the number of scalars seen by the last completed pass.
	TargetTotalFields int
	// TargetTotalPasses counts completed passes for this corpus item.
	TargetTotalPasses int
	// FinishedIteration is set once the targeted scalar was mutated this pass.
	FinishedIteration bool
	// MutationPass is set when the current pass mutated the value, even if
	// it found no scalar to visit.
	MutationPass bool

	// TargetBitWidth and TargetTableLen describe the targeted scalar as seen
	// during the current pass, so the mode can advance after the pass ends.
	TargetBitWidth uint8
	TargetTableLen int
}

// NewCorpusState returns the state of a fresh corpus item.
func NewCorpusState() CorpusState {
	return CorpusState{Mode: InitialMode()}
}

// Reset starts a new corpus item.
func (s *CorpusState) Reset() {
	*s = NewCorpusState()
}

// ResetIteration prepares for the next mutation pass.
func (s *CorpusState) ResetIteration() {
	s.FieldsFuzzed = 0
	s.FinishedIteration = false
	s.MutationPass = false
}
