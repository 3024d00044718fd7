package docscrape

import "strings"

// filenameReplacer maps every character unsafe in a path component to '_'.
var filenameReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	"?", "_",
	"%", "_",
	"*", "_",
	":", "_",
	"|", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	".", "_",
	" ", "_",
)

// SanitizeFilename replaces path separators, wildcards, quotes, angle
// brackets, dots and spaces in s with underscores so the result can be
// used as a single path component.
//
// Dots are replaced too, so append any file extension after sanitizing.
func SanitizeFilename(s string) string {
	return filenameReplacer.Replace(s)
}
