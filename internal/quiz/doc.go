// package quiz implements the exercise engine and lesson tracker.
//
// Exercise and lesson content is static; all mutable progress lives in a
// [models.SessionState] owned by the caller and persisted through a Saver
// after every mutation.
package quiz
