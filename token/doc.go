// Package token renders JSON scalar tokens: quoted strings and numbers.
//
// [Quote] escapes a string the way the circuit document expects, and
// [FormatFloat] fixes one portable text form for floating point values.
package token
