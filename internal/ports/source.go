package ports

import "github.com/hashsdn/hashsdn-yangtools/internal/types"

// ModuleLike is the capability set shared by every module
// representation entering the dependency sort: a stable identity, an
// XML namespace URI and the outgoing import/include edges. Both
// already-compiled modules and in-progress builders satisfy it, so the
// sorter never inspects concrete types.
type ModuleLike interface {
	Identity() types.ModuleIdentity
	Namespace() string
	Imports() []types.ImportDescriptor
}

// ModuleSource is an in-progress module builder: a ModuleLike that can
// additionally produce the declared statement tree for reactor
// processing.
type ModuleSource interface {
	ModuleLike
	Root() (types.Statement, error)
}
