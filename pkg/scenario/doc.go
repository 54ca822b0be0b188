/*
Package scenario drives a fabricmock Manager from declarative YAML or JSON scripts.

A scenario is a list of steps, one per emulator operation, plus assertion steps that
check the committed tree. Nodes and child sets produced by earlier steps are referred
to by name ("ref" and "set"), so clones of the same tag can be told apart.

	name: nested parent lookup
	root: 11
	steps:
	  - {op: createNode, ref: A, tag: 1, view: View}
	  - {op: createNode, ref: B, tag: 2, view: Text}
	  - {op: appendChild, parent: A, child: B}
	  - {op: createChildSet, set: main}
	  - {op: appendChildToSet, set: main, child: A}
	  - {op: completeRoot, set: main}
	  - {op: expectParent, node: B, handle: A}
	  - {op: expectChildren, node: root, handles: [A]}

Instance handles default to the ref name. The reserved ref "root" names the synthetic
root of the scenario's root tag.
*/
package scenario
