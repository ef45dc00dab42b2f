package geometry

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle holds the three vertices of one surface facet
type Triangle [3]r3.Vec

const (
	stlHeaderSize = 80
	stlCountSize  = 4
	stlRecordSize = 50
)

// stlRecord is the on-disk layout of one binary STL facet
type stlRecord struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// IsBinarySTL reports whether data has the exact length of a binary STL file
// declaring the triangle count found after the 80 byte header. ASCII files
// are free to start with "solid" in either format, so the length is the only
// reliable signal.
func IsBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize+stlCountSize {
		return false
	}
	n := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	return int64(len(data)) == int64(stlHeaderSize+stlCountSize)+int64(n)*stlRecordSize
}

// ParseSTL decodes an ASCII or binary STL file. The returned name is the
// solid name of an ASCII file and empty for a binary file.
func ParseSTL(data []byte) (name string, tris []Triangle, err error) {
	if IsBinarySTL(data) {
		tris, err = parseBinarySTL(data)
		return
	}
	return parseASCIISTL(data)
}

func parseBinarySTL(data []byte) (tris []Triangle, err error) {
	var (
		n   = binary.LittleEndian.Uint32(data[stlHeaderSize:])
		rdr = bytes.NewReader(data[stlHeaderSize+stlCountSize:])
		rec stlRecord
	)
	tris = make([]Triangle, n)
	for i := range tris {
		if err = binary.Read(rdr, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("reading facet %d: %w", i, err)
		}
		for j, v := range rec.Vertices {
			tris[i][j] = r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
		}
	}
	return
}

func parseASCIISTL(data []byte) (name string, tris []Triangle, err error) {
	var (
		scanner = bufio.NewScanner(bytes.NewReader(data))
		lineNum int
		sawHead bool
		corners []r3.Vec
	)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		keyword := strings.ToLower(fields[0])
		if !sawHead {
			if keyword != "solid" {
				return "", nil, fmt.Errorf("line %d: not an STL file, expected \"solid\" but found %q",
					lineNum, fields[0])
			}
			sawHead = true
			name = strings.Join(fields[1:], " ")
			continue
		}
		if keyword != "vertex" {
			// facet, outer loop, endloop, endfacet and endsolid carry nothing we need
			continue
		}
		if len(fields) < 4 {
			return "", nil, fmt.Errorf("line %d: vertex needs 3 coordinates, found %d",
				lineNum, len(fields)-1)
		}
		var xyz [3]float64
		for j := range xyz {
			if xyz[j], err = strconv.ParseFloat(fields[1+j], 64); err != nil {
				return "", nil, fmt.Errorf("line %d: invalid coordinate: %w", lineNum, err)
			}
		}
		corners = append(corners, r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err = scanner.Err(); err != nil {
		return "", nil, err
	}
	if !sawHead {
		return "", nil, fmt.Errorf("empty STL file")
	}
	if len(corners)%3 != 0 {
		return "", nil, fmt.Errorf("found %d vertices, not a multiple of 3", len(corners))
	}
	tris = make([]Triangle, len(corners)/3)
	for i := range tris {
		copy(tris[i][:], corners[3*i:3*i+3])
	}
	return
}

// Normal returns the unit facet normal following the right hand rule, or
// the zero vector for a degenerate triangle.
func (t Triangle) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// WriteASCIISTL writes tris as an ASCII STL solid called name
func WriteASCIISTL(w io.Writer, name string, tris []Triangle) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range tris {
		n := t.Normal()
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range t {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

// WriteBinarySTL writes tris as a binary STL with a blank header
func WriteBinarySTL(w io.Writer, tris []Triangle) error {
	var header [stlHeaderSize]byte
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(tris))); err != nil {
		return err
	}
	for _, t := range tris {
		var rec stlRecord
		n := t.Normal()
		rec.Normal = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		for j, v := range t {
			rec.Vertices[j] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}
