package cmd

// legacyFlags maps the two-letter short flags of the historical command line
// to their long forms. pflag only understands one-letter shorthands.
var legacyFlags = map[string]string{
	"-bm": "--begin-marker",
	"-em": "--end-marker",
}

// valueFlags take the following argument as their value.
var valueFlags = map[string]bool{
	"-d": true, "--directory": true,
	"-o": true, "--output": true,
	"-bm": true, "--begin-marker": true,
	"-em": true, "--end-marker": true,
	"--config": true,
}

// NormalizeArgs rewrites legacy flags. Flag values and everything after "--"
// are passed through untouched.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if long, ok := legacyFlags[arg]; ok {
			out = append(out, long)
		} else {
			out = append(out, arg)
		}
		if valueFlags[arg] && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}
