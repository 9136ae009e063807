package marker

import (
	"path/filepath"
	"strings"
)

// extensions maps file extensions to host language ids.
var extensions = map[string]string{
	".cs":   "CSharp",
	".c":    "C/C++",
	".h":    "C/C++",
	".cc":   "C/C++",
	".cpp":  "C/C++",
	".cxx":  "C/C++",
	".hpp":  "C/C++",
	".ts":   "TypeScript",
	".tsx":  "TypeScript",
	".js":   "JavaScript",
	".jsx":  "JavaScript",
	".mjs":  "JavaScript",
	".fs":   "F#",
	".fsi":  "F#",
	".fsx":  "F#",
	".ps1":  "PowerShell",
	".psm1": "PowerShell",
	".py":   "Python",
	".sql":  "SQL Server Tools",
	".vb":   "Basic",
	".bas":  "Basic",
	".xml":  "XML",
	".xaml": "XAML",
	".htm":  "HTML",
	".html": "HTML",
	".css":  "CSS",
}

// DetectLanguage guesses the language id of a file from its extension.
// Returns "" when the extension is unknown.
func DetectLanguage(filename string) string {
	return extensions[strings.ToLower(filepath.Ext(filename))]
}
