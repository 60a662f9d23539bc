// Package sqlinfer inspects delimited text files (CSV-family) and infers a
// probable SQL schema: column names, semantic types, and concrete SQL type
// declarations suitable for driving table creation and bulk load.
//
// The package is the inference engine only. It does not prompt a user, does
// not enumerate directories, and does not execute DDL against a database —
// those are external collaborators built on top of the column descriptors
// this package emits. See the executor package for a DDL-emitting
// collaborator, and cmd/sqlinfer for a command-line driver.
package sqlinfer
