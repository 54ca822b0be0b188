/*
Package fabricmock is an in-memory emulator of the native UI tree manager used by a
mobile rendering framework ("Fabric UIManager"), built for tests that must run without
a native renderer.

It keeps a forest of host nodes per root, mirrors the native node construction contract
(create, clone, append, complete root), answers measurement calls with fixed geometry,
and resolves parent/children queries against the tree last committed for a root.

# Concept

Rendering happens in two phases. During the build phase the caller produces new nodes
through the clone operations, which never modify their input. During the commit phase
CompleteRoot swaps the visible child set of a root. Queries such as GetParentNode and
GetChildNodes always read the committed tree, so a detached, in-progress clone is
resolved to whatever is currently "on screen".

Two operations mutate in place: AppendChild (on a node) and AppendChildToSet (on a
child set). Every other construction operation is copy-on-write.

# Usage

	m := fabricmock.New()

	a, _ := m.CreateNode(1, "View", 11, domain.Props{"flex": 1}, "A")
	b, _ := m.CreateNode(2, "Text", 11, nil, "B")
	m.AppendChild(a, b)

	set := m.CreateChildSet(11)
	m.AppendChildToSet(set, a)
	m.CompleteRoot(11, set)

	parent := m.GetParentNode(b) // "A"

Code written against the UIManager interface can obtain the process-wide instance
through Default, and tests can swap it with Install.
*/
package fabricmock
