package source

// FileID uniquely identifies a source file within a FileSet.
type FileID uint32

// FileFlags encodes metadata about how a source file was ingested.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 byte-order mark was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF sequences were normalized to LF on load.
	FileNormalizedCRLF
	// FileNormalizedNFC indicates the content was Unicode-NFC normalized on load.
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a 1-indexed human-readable position in a source
// file: line, column.
type LineCol struct {
	Line uint32
	Col  uint32
}
