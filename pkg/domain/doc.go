/*
Package domain contains the core models shared by the fabricmock emulator and its adapters.

It defines the shape of the simulated native UI tree: host nodes, child sets, root tags
and the opaque instance handles callers thread through them. The package is kept free
of I/O so it can be imported by every adapter without pulling in the emulator itself.

# Key Entities

  - Node: One UI element (host node) or the synthetic root of a committed tree.
  - ChildSet: An ordered, mutable list of nodes accumulated before a root is completed.
  - TreeSnapshot: A serializable copy of a committed tree, used by stores and the HTTP API.
  - Hooks: Callbacks fired for every emulator operation.
*/
package domain
