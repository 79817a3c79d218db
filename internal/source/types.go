package source

type (
	// FileID uniquely identifies a chant text within a FileSet.
	FileID uint32
	// FileFlags encodes how the text entered the FileSet.
	FileFlags uint8
)

const (
	// FileVirtual marks text added from memory (tests, stdin, embedded resources).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures the raw notation text of one chant plus its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position in a chant text.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
