// Package render turns command results into terminal output: aligned tables
// for the LIST commands and verbatim lines for messages. Message wording is
// owned by the inventory package; render only handles layout.
package render
