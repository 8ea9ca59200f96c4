package session

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dshills/polydraw/internal/engine/drawing"
	"github.com/dshills/polydraw/internal/geom"
)

func sampleDocument() Document {
	return Document{
		Finished: []drawing.Polygon{
			{ID: "poly-2", Points: geom.PolyLine{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4)}},
			{ID: "poly-1", Points: geom.PolyLine{geom.Pt(1.5, 2.25), geom.Pt(-3, 7)}},
		},
		Current: geom.PolyLine{geom.Pt(10, 10), geom.Pt(12, 8)},
	}
}

func equalDocuments(a, b Document) bool {
	if len(a.Finished) != len(b.Finished) {
		return false
	}
	for i := range a.Finished {
		if a.Finished[i].ID != b.Finished[i].ID {
			return false
		}
		if !a.Finished[i].Points.Equal(b.Finished[i].Points) {
			return false
		}
	}
	return a.Current.Equal(b.Current)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	if err := Save(&buf, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !equalDocuments(doc, got) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, doc)
	}
}

func TestSaveLoadEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := Save(&buf, Document{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Finished) != 0 || got.Current.Len() != 0 {
		t.Errorf("empty document round trip = %+v", got)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("NOPE")
	binary.Write(&buf, binary.LittleEndian, uint32(formatVersion))

	if _, err := Load(&buf); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Load with bad magic = %v, want ErrInvalidFormat", err)
	}
}

func TestLoadRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(formatMagic)
	binary.Write(&buf, binary.LittleEndian, uint32(formatVersion+1))

	if _, err := Load(&buf); !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("Load with bad version = %v, want ErrVersionMismatch", err)
	}
}

func TestLoadRejectsOversizedCounts(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(formatMagic)
	binary.Write(&buf, binary.LittleEndian, uint32(formatVersion))
	binary.Write(&buf, binary.LittleEndian, uint32(maxPolygons+1))

	if _, err := Load(&buf); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Load with oversized polygon count = %v, want ErrInvalidFormat", err)
	}
}

func TestLoadTruncatedFile(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	if err := Save(&buf, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]

	if _, err := Load(bytes.NewReader(truncated)); err == nil {
		t.Error("Load of a truncated file should fail")
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawing.pdrw")
	doc := sampleDocument()

	if err := SaveFile(path, doc); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !equalDocuments(doc, got) {
		t.Errorf("file round trip mismatch: got %+v, want %+v", got, doc)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.pdrw")); err == nil {
		t.Error("LoadFile of a missing file should fail")
	}
}
