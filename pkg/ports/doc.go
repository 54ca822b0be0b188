/*
Package ports defines the driven ports (interfaces) for the fabricmock tooling.

These interfaces decouple the emulator from external implementations so committed trees
can be exported to different backends.

# Key Interfaces

  - SnapshotStore: Persists and loads TreeSnapshots keyed by root tag (e.g., Memory or Redis).
*/
package ports
