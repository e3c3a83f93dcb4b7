// Package store persists the CLI's signature files on disk.
//
// A recording is the JSON list of pen strokes a signature was drawn with; an
// artifact is the exported PNG. Nothing about bookings is stored: forms and
// payment sessions live only for one CLI run.
//
// Writes go through a temp file in the same directory and are renamed into
// place, so a crash never leaves a half-written file behind.
package store
