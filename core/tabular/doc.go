// Package tabular defines the raw table model handed to the schema normalizer
// and implements CSV decoding into that model.
//
// A Table is an ordered list of free-form column names plus rows of string
// cells. Column names are arbitrary text; interpreting them is the job of
// core/schema. The engine itself never touches file formats beyond this
// package.
package tabular
