package types

import "time"

// RevisionLayout is the calendar-date layout of a module revision.
const RevisionLayout = "2006-01-02"

// Revision is a module revision date, or the unspecified sentinel when
// the source declares none. Revisions order lexically, which matches
// chronological order for the fixed layout.
type Revision string

// RevisionUnspecified is the sentinel used when a module or import does
// not state a revision.
const RevisionUnspecified Revision = ""

// Specified reports whether the revision carries an actual date.
func (r Revision) Specified() bool {
	return r != RevisionUnspecified
}

// Validate checks that a specified revision parses as a calendar date.
func (r Revision) Validate() error {
	if !r.Specified() {
		return nil
	}
	_, err := time.Parse(RevisionLayout, string(r))
	return err
}

func (r Revision) String() string {
	if !r.Specified() {
		return "unspecified"
	}
	return string(r)
}

// ModuleIdentity keys a module instance by name and revision. It is
// comparable and used as the dependency-graph node key.
type ModuleIdentity struct {
	Name     string
	Revision Revision
}

func (id ModuleIdentity) String() string {
	return id.Name + "@" + id.Revision.String()
}

// ImportDescriptor names one import or include edge of a module.
type ImportDescriptor struct {
	Module   string
	Revision Revision
}
