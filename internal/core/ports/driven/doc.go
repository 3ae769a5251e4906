// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DatabaseLoader: Reads question database documents (local directory or GitHub)
//   - DatabaseStore: Holds the loaded, read-only documents by name
//   - SchemaNormaliser: Flattens one document shape into a question pool
//   - NormaliserRegistry: Selects the normaliser for a document kind
//   - Renderer: Serialises questions to text
//   - RendererRegistry: Selects the renderer for an output format
//   - RandomSource: Uniform random integers for sampling
//   - Clock: Wall-clock time for provenance
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DatabaseWatcher: Change notifications for hot reload
//   - OutputSink: File output (stdout needs no sink)
//   - HistoryStore: Generation history. Without it, sessions are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, loader, normaliser or renderer package
package driven
