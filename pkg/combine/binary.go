package combine

import "github.com/gabriel-vasile/mimetype"

// isText reports whether content is detected as some kind of text. The
// detected MIME type is returned for diagnostics.
func isText(content []byte) (string, bool) {
	detected := mimetype.Detect(content)
	for mtype := detected; mtype != nil; mtype = mtype.Parent() {
		if mtype.Is("text/plain") {
			return detected.String(), true
		}
	}
	return detected.String(), false
}
