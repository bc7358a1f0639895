package scene

// Section identifies a bracket-delimited region of a scene file. The
// section a line falls under decides how the preload pass interprets it.
type Section string

// Sections that appear in scene files. Velocity and Connection are
// recognized but carry nothing the preload pass needs; ParticleMemIndex
// and End both terminate the pass.
const (
	SectionNone             Section = ""
	SectionSimulationBox    Section = "simulation box"
	SectionPhysicalParams   Section = "physical parameters"
	SectionPosition         Section = "position"
	SectionVelocity         Section = "velocity"
	SectionConnection       Section = "connection"
	SectionMembranes        Section = "membranes"
	SectionParticleMemIndex Section = "particleMemIndex"
	SectionEnd              Section = "end"
)

// parseSectionHeader reports whether a trimmed line is a section header,
// and if so which section it names. Any bracketed name is accepted; names
// without a handler simply make every line under them inert.
func parseSectionHeader(line string) (Section, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return SectionNone, false
	}
	return Section(line[1 : len(line)-1]), true
}

// terminal reports whether entering the section ends the preload pass.
// By [particleMemIndex] every sizing-relevant count is final, so the rest
// of the file is never read.
func (s Section) terminal() bool {
	return s == SectionParticleMemIndex || s == SectionEnd
}
