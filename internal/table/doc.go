// Package table keeps a row/column grid view of one AGS group in sync
// with the source text buffer.
//
// The engine holds the active group name and mediates both directions:
// cursor movement in the buffer selects and highlights the matching
// grid row, and cell edits from the grid are written back to the
// buffer as single-span replacements of the quoted field content. A
// successful write invalidates the parsed document (via the buffer
// changed event) and regenerates the grid.
//
// Addressing is by cell address: row kind (heading, unit, type, data),
// row ordinal, and column index over the group's headings. Addresses
// that cannot be resolved to a physical line are silent no-ops, as is
// selecting a group the document does not contain.
package table
