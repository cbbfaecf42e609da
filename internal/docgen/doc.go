// Package docgen turns a directory of example programs into one generated
// reStructuredText page per example.
//
// A run is a fail-fast batch: every example is parsed and rendered in
// memory first, then the output directory is removed and recreated, then
// the pages are written in filename order. A broken example aborts the
// run before anything on disk changes. Check compares the planned pages
// with what is on disk without writing, for use in CI.
//
// Generation is sequential. The context is consulted between files only,
// so an interrupted run stops at a file boundary.
package docgen
