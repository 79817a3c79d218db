package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("kyrie.chant", []byte("CLEF(do,3)"), 0)
	id2 := fs.Add("kyrie.chant", []byte("CLEF(fa,2)"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", id1, id2)
	}

	latest, ok := fs.GetLatest("kyrie.chant")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "CLEF(do,3)" {
		t.Errorf("first version content = %q", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.chant", []byte("CLEF(do,3)\nKy(do)\n\nri(re)"))

	tests := []struct {
		name  string
		start uint32
		want  LineCol
	}{
		{"first byte", 0, LineCol{Line: 1, Col: 1}},
		{"newline belongs to its line", 10, LineCol{Line: 1, Col: 11}},
		{"second line", 11, LineCol{Line: 2, Col: 1}},
		{"inside second line", 14, LineCol{Line: 2, Col: 4}},
		{"last line", 19, LineCol{Line: 4, Col: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.start, End: tt.start + 1})
			if start != tt.want {
				t.Errorf("Resolve(%d) = %+v, want %+v", tt.start, start, tt.want)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.chant", []byte("one\ntwo\nthree")))

	for n, want := range map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""} {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alleluia.chant")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFCLEF(do,4)\r\nAl-(sol)"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "CLEF(do,4)\nAl-(sol)" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("cross-file Cover changed span: %v", got)
	}
	if got := a.Sub(1, 3); got != (Span{File: 1, Start: 5, End: 7}) {
		t.Errorf("Sub = %v", got)
	}
}
