package geometry

import "strings"

// RenameSolid rewrites the solid name of an ASCII STL file. The first line
// is always replaced with "solid <name>", whatever it held before, and the
// last line is replaced with "endsolid <name>" when it contains "endsolid".
// Empty content is returned unchanged; binary content is returned unchanged
// together with ErrBinarySTL.
func RenameSolid(content []byte, name string) ([]byte, error) {
	if IsBinarySTL(content) {
		return content, ErrBinarySTL
	}
	if len(content) == 0 {
		return content, nil
	}
	lines := strings.SplitAfter(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	lines[0] = "solid " + name + "\n"
	last := len(lines) - 1
	if strings.Contains(lines[last], "endsolid") {
		lines[last] = "endsolid " + name + "\n"
	}
	return []byte(strings.Join(lines, "")), nil
}
