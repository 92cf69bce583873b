// package tasks implements the artist discovery orchestration.
//
// The core abstraction is DiscoveryEngine, which runs a randomized artist
// search, resolves card images concurrently, and marks the discovery exercise
// complete. Operations emit progress updates via channels for non-blocking
// status reporting to CLI/UI layers.
package tasks
