// Package session persists drawing documents to disk in a compact
// binary format so a drawing survives restarts.
package session

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/dshills/polydraw/internal/engine/drawing"
	"github.com/dshills/polydraw/internal/geom"
)

// Persistence format version
const formatVersion = 1

// Magic bytes for file identification
var formatMagic = []byte("PDRW")

// Persistence errors
var (
	ErrInvalidFormat   = errors.New("invalid session format")
	ErrVersionMismatch = errors.New("session version mismatch")
)

// Limits guarding against malformed files.
const (
	maxIDLength = 256
	maxPoints   = 16 * 1024 * 1024
	maxPolygons = 1024 * 1024
)

// Document is the persisted drawing: finished polygons newest first and
// the in-progress polyline, if any.
type Document struct {
	Finished []drawing.Polygon
	Current  geom.PolyLine
}

// Save writes a document to a writer.
// Format:
//
//	[4 bytes] Magic "PDRW"
//	[4 bytes] Version (little endian)
//	[4 bytes] Polygon count (little endian)
//	[polygons...]
//	  [4 bytes] ID length
//	  [n bytes] ID
//	  [4 bytes] Point count
//	  [points...]
//	    [8 bytes] X (float64 bits, little endian)
//	    [8 bytes] Y (float64 bits, little endian)
//	[4 bytes] Current point count
//	[points...]
func Save(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.Write(formatMagic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(formatVersion)); err != nil {
		return err
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(doc.Finished))); err != nil {
		return err
	}
	for _, poly := range doc.Finished {
		if err := writePolygon(bw, poly); err != nil {
			return err
		}
	}

	if err := writePoints(bw, doc.Current); err != nil {
		return err
	}

	return bw.Flush()
}

// Load reads a document from a reader.
func Load(r io.Reader) (Document, error) {
	var doc Document
	br := bufio.NewReader(r)

	magic := make([]byte, 4)
	if _, err := io.ReadFull(br, magic); err != nil {
		return doc, err
	}
	if string(magic) != string(formatMagic) {
		return doc, ErrInvalidFormat
	}

	var version uint32
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return doc, err
	}
	if version != formatVersion {
		return doc, ErrVersionMismatch
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return doc, err
	}
	if count > maxPolygons {
		return doc, ErrInvalidFormat
	}

	if count > 0 {
		doc.Finished = make([]drawing.Polygon, 0, count)
	}
	for i := uint32(0); i < count; i++ {
		poly, err := readPolygon(br)
		if err != nil {
			return doc, err
		}
		doc.Finished = append(doc.Finished, poly)
	}

	current, err := readPoints(br)
	if err != nil {
		return doc, err
	}
	doc.Current = current

	return doc, nil
}

func writePolygon(w *bufio.Writer, poly drawing.Polygon) error {
	if len(poly.ID) > maxIDLength {
		return ErrInvalidFormat
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(poly.ID))); err != nil {
		return err
	}
	if _, err := w.WriteString(poly.ID); err != nil {
		return err
	}
	return writePoints(w, poly.Points)
}

func readPolygon(r *bufio.Reader) (drawing.Polygon, error) {
	var poly drawing.Polygon

	var idLen uint32
	if err := binary.Read(r, binary.LittleEndian, &idLen); err != nil {
		return poly, err
	}
	if idLen > maxIDLength {
		return poly, ErrInvalidFormat
	}
	idBuf := make([]byte, idLen)
	if _, err := io.ReadFull(r, idBuf); err != nil {
		return poly, err
	}
	poly.ID = string(idBuf)

	points, err := readPoints(r)
	if err != nil {
		return poly, err
	}
	poly.Points = points

	return poly, nil
}

func writePoints(w *bufio.Writer, pl geom.PolyLine) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(pl))); err != nil {
		return err
	}
	for _, p := range pl {
		if err := binary.Write(w, binary.LittleEndian, p.X); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, p.Y); err != nil {
			return err
		}
	}
	return nil
}

func readPoints(r *bufio.Reader) (geom.PolyLine, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}

	// Validate count to prevent OOM from malformed files
	if count > maxPoints {
		return nil, ErrInvalidFormat
	}
	if count == 0 {
		return nil, nil
	}

	pl := make(geom.PolyLine, 0, count)
	for i := uint32(0); i < count; i++ {
		var p geom.Point
		if err := binary.Read(r, binary.LittleEndian, &p.X); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &p.Y); err != nil {
			return nil, err
		}
		pl = append(pl, p)
	}
	return pl, nil
}

// SaveFile saves a document to a file.
func SaveFile(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Save(f, doc)
}

// LoadFile reads a document from a file.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	return Load(f)
}
