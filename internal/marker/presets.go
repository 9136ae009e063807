package marker

// Presets names markers so manual mode and language overrides can say
// "shell" instead of quoting "#" in a settings file or on the command line.
var Presets = map[string]string{
	"shell":     "#",
	"c":         "//",
	"lua":       "--",
	"sql":       "--",
	"vim":       "\"",
	"semicolon": ";",
	"basic":     "'",
}

// ResolvePreset turns a configured marker value into the marker to insert.
// A preset name yields its marker; any other value is a literal marker, with
// one pair of matching surrounding quotes removed so that '# ' keeps its
// trailing space and 'shell' means the word itself.
func ResolvePreset(value string) string {
	if m, ok := Presets[value]; ok {
		return m
	}
	if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
		return value[1 : n-1]
	}
	return value
}
