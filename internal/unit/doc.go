// internal/unit/doc.go

/*
Package unit defines the closed set of temperature units accepted on the
command line.

Six tags are recognised: the canonical long forms Fahrenheit, Celsius and
Kelvin, and their short aliases F, C and K. Every alias maps to exactly one
canonical unit via LongForm. Matching is case-insensitive.
*/
package unit
