// Package formats parses graphs from JSON, CSV, and DOT text into a
// *graph.Graph, and serializes a graph back to each of the three.
//
// Parsing is permissive by design: malformed rows or unrecognized DOT
// statements are skipped rather than aborting the whole file, mirroring
// the tolerant scan the originating service used for user-uploaded data.
package formats
