/*
Package observability provides tools for monitoring and introspecting the fabricmock emulator.

It includes a call recorder that keeps every invocation made against a Manager (similar
to the call log of a mock function) and Prometheus metrics hooks that count operations
and errors.
*/
package observability
