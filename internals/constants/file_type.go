package constants

import (
	"path/filepath"
	"strings"
)

type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeImage
	FileTypeVideo
	FileTypeDocument
)

// DetectFileTypeFromExt classifies a file name or URL path by extension.
func DetectFileTypeFromExt(filename string) FileType {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return FileTypeImage
	case ".mp4", ".mov", ".webm", ".mkv":
		return FileTypeVideo
	case ".pdf", ".doc", ".docx", ".ppt", ".pptx":
		return FileTypeDocument
	default:
		return FileTypeUnknown
	}
}
