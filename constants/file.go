package constants

import "strings"

// PDFExt is the only extension the sync pipeline dispatches. The suffix
// match is case-sensitive: the analysis service indexes documents by the
// exact filename it receives.
const PDFExt = ".pdf"

// IsPDF reports whether name carries the .pdf suffix.
func IsPDF(name string) bool {
	return strings.HasSuffix(name, PDFExt)
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
