// Package classify maps a sample's file name and ancestor folder names to a
// destination category.
//
// Classification is a priority list: rules are evaluated top to bottom and
// the first rule with any matching keyword wins. Rule order is load-bearing
// (drum one-shots before drum loops before the generic "loop" catch-all), so
// the table is a slice, never a map.
package classify
