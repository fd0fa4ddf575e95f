package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// Extractor turns an uploaded file into delimited text ready for ParseCSV.
// Plain .csv/.txt uploads are read as-is; office and PDF documents go
// through docconv text extraction first.
type Extractor struct {
	uploadsDir string
}

func NewExtractor(uploadsDir string) *Extractor {
	return &Extractor{uploadsDir: uploadsDir}
}

// ExtractText saves the upload under the uploads dir and returns its text
// content based on the file extension.
func (e *Extractor) ExtractText(filename string, reader io.Reader) (string, error) {
	if err := os.MkdirAll(e.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	filePath := filepath.Join(e.uploadsDir, filepath.Base(filename))
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(content), nil
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to extract document text: %w", err)
		}
		return res.Body, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}
