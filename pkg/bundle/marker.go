package bundle

import "strings"

// Markers is the framing contract. Payload bytes are opaque to it.
type Markers struct {
	Begin string
	End   string
}

// Header returns the begin-marker line for filename.
func (m Markers) Header(filename string) string {
	return m.Begin + " " + filename + "\n"
}

// Footer returns the end-marker line for filename.
func (m Markers) Footer(filename string) string {
	return m.End + " " + filename + "\n"
}

// Frame appends one complete section for filename to sb.
func (m Markers) Frame(sb *strings.Builder, filename string, payload []byte) {
	sb.WriteString(m.Header(filename))
	sb.Write(payload)
	sb.WriteString(m.Footer(filename))
}

// Present reports whether buf contains at least one begin and one end marker.
func (m Markers) Present(buf string) bool {
	return strings.Contains(buf, m.Begin) && strings.Contains(buf, m.End)
}

// Section is one framed file located in a buffer.
type Section struct {
	Filename   string // Name following the begin marker.
	FooterName string // Name following the end marker; informational only.
	Payload    string // Bytes between the header line and the end marker.
	Offset     int    // Offset of the begin marker.
	Malformed  bool   // Header line has no LF before the end marker.
}

// Next locates the first section whose begin marker is at or after from.
// It returns the section, the offset where scanning continues and whether a
// section was found. A begin marker with no end marker after it ends the scan.
func (m Markers) Next(buf string, from int) (Section, int, bool) {
	if from >= len(buf) {
		return Section{}, len(buf), false
	}
	b := strings.Index(buf[from:], m.Begin)
	if b < 0 {
		return Section{}, len(buf), false
	}
	b += from
	e := strings.Index(buf[b:], m.End)
	if e < 0 {
		return Section{}, len(buf), false
	}
	e += b

	// Scanning resumes one byte past the end marker, clamped to the buffer.
	next := e + len(m.End) + 1
	if next > len(buf) {
		next = len(buf)
	}

	sec := Section{Offset: b, FooterName: footerName(buf, e+len(m.End))}
	nameStart := b + len(m.Begin) + 1
	nl := -1
	if nameStart <= e {
		nl = strings.IndexByte(buf[nameStart:e], '\n')
	}
	if nl < 0 {
		sec.Malformed = true
		return sec, next, true
	}
	nameEnd := nameStart + nl
	sec.Filename = buf[nameStart:nameEnd]
	sec.Payload = buf[nameEnd+1 : e]
	return sec, next, true
}

// footerName reads the name after the end marker at offset at, if any.
func footerName(buf string, at int) string {
	if at >= len(buf) || buf[at] != ' ' {
		return ""
	}
	rest := buf[at+1:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		return rest[:nl]
	}
	return rest
}
