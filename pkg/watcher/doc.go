// Package watcher re-triggers validation when watched broker definition
// files change on disk, powering the validate --watch edit loop.
//
// Bursts of filesystem events are debounced into a single callback so a
// save that touches a file several times validates once.
package watcher
