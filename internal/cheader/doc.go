// Package cheader renders binary data as a C header: an unsigned char array
// literal in hex plus an unsigned int length, wrapped in include guards.
//
// The layout is a byte-for-byte contract with previously generated headers:
//
//   - 16 values per row, each row indented four spaces
//   - values separated by ", " within a row, a bare newline at row end
//   - a comma after every value except the last one overall
//   - one extra newline closing a ragged final row (and the empty input)
//
// Comma placement and row termination are decided independently, so the last
// value of the data gets a trailing space whenever it does not fall at the end
// of a full row.
package cheader
