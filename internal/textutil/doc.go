// Package textutil provides the name normalization used when sample names
// have to be compressed to fit the destination path budget.
//
// The building blocks are composable string transforms:
//   - Collapse turns separator runs (whitespace, hyphen, period, underscore)
//     into single underscores
//   - DropFiller removes generic tokens such as articles, "loop", "sample",
//     version markers and marketplace boilerplate
//   - StripMedialVowels removes vowels from the middle of each token
//   - Fold reduces accented letters to their base letters
//
// ShortenFolder and ShortenStem chain them for directory names and file
// stems respectively. None of the transforms ever returns an empty string
// for non-empty input.
package textutil
