// Package models defines domain entities and persistence interfaces for the tunetutor tutorial.
//
// The package contains two categories of types:
//
// 1. Session types: In-memory state mutated by the quiz engine and lesson tracker
//   - [ExerciseState] : Per-exercise attempts/completion/correctness
//   - [LessonState] : Per-lesson completion, progress percentage and expansion
//   - [SessionState] : The aggregate snapshot serialized to the local store
//   - [Answer] / [Outcome] : Submission input and its discriminated result
//
// 2. Lookup and persistence types:
//   - [ArtistRecord] : Artist metadata produced by the lookup services, transient
//   - [ImageDescriptor] : Deterministic placeholder image derived from an artist name
//   - [QuizResult] : A completed quiz run recorded in the database
//
// Persistent entities implement the Model interface providing ID generation, timestamps,
// validation, and soft delete support. The Repository[T] interface defines standard CRUD
// operations for database access.
package models
