// Package document lays out a shopping list as lines of text on fixed-size
// pages and serializes the result as a PDF.
//
// Coordinates follow the PDF convention: points, origin at the bottom-left
// corner of the page, y growing upwards. Layout is pure and deterministic so
// it can be inspected without parsing the produced PDF.
package document
