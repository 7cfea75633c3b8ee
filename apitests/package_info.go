// Package apitests contains the backend smoke tests themselves and their supporting API.
//
// Each case is a function taking *T that records one or more named checks. Cases share a
// Session, which carries the tokens and identifiers one case obtains for the cases after it.
//
// Infrastructure that is not specific to this backend, such as running cases, recording
// results and writing the report, is in the lower-level framework package.
package apitests
