// Package memory is the retrieval subsystem behind the future
// "chat with past self" feature.
//
// It stores personality snapshots (and, later, free-form reflection
// entries) as embedded documents and retrieves them by vector
// similarity. The assessment state machine does not depend on it: the
// chat view is a placeholder and never queries memory. The application
// constructs the store handle at startup; recording is opt-in via
// Config.Enabled (off by default).
//
// Architecture:
//   - Store: vector storage backend (chromem-go, optionally persistent)
//   - Embedder: text-to-vector conversion (mock by default, ONNX with
//     all-MiniLM-L6-v2 behind the onnx build tag)
//   - Manager: orchestrates recording and retrieval
//
// Memories live in a single collection ("ego_personality" by default)
// and are namespaced per owner through document metadata.
package memory
