// Package normalisers provides implementations of the SchemaNormaliser
// interface for the question database shapes. Each normaliser knows how to
// flatten one document kind into a pool of question records.
//
// Normalisers are registered with the Registry at startup.
package normalisers
