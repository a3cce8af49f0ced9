// Package output renders CLI results as tables or JSON depending on
// the --output flag.
package output
