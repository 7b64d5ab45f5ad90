// Package ags parses AGS-format geotechnical data files into a
// structured document model and answers positional queries against it.
//
// An AGS file is line oriented. Every field on a line is wrapped in
// double quotes and fields are separated by commas. The first field of
// each meaningful line is a row-type keyword:
//
//	"GROUP","LOCA"
//	"HEADING","LOCA_ID","LOCA_TYPE","LOCA_FDEP"
//	"UNIT","","","m"
//	"TYPE","ID","PA","2DP"
//	"DATA","BH01","BH","12.50"
//
// The parser is maximally permissive: lines that do not match a known
// row kind, or that appear outside any group, are skipped without
// error. Nothing is validated against a schema.
//
// The package has three parts:
//
//   - Fields: the quoted-field extractor for a single line
//   - Parse: the one-pass state machine building a Document
//   - ColumnAt / GroupForLine: pure positional queries used to map
//     cursor coordinates to a semantic location
package ags
