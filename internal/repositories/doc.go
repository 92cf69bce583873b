// package repositories provides the persistence layer over SQLite.
//
// StateRepository is a small key/value store backing session state,
// SessionStore maps it to and from [models.SessionState], and
// ResultRepository implements models.Repository[*models.QuizResult] with
// CRUD, soft deletes, and sequence generation.
package repositories
