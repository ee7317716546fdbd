// ABOUTME: Document loaders for plain text, markdown and CSV study material
// ABOUTME: Produces Document values with per-format profiling metadata
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"flipflops/internal/models"
)

// SupportedExtensions lists the file types the loader understands.
var SupportedExtensions = []string{".txt", ".md", ".csv"}

// IsSupported reports whether the path has a loadable extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// LoadDocument reads a file into a Document. Text and markdown get line and
// word counts; CSV gets a row/column profile. Text extracted from a PDF and
// saved as "<name>.pdf.txt" keeps file_type "pdf" so its ranking boost
// survives; raw PDF binaries are not parsed.
func LoadDocument(path string) (*models.Document, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := filepath.Base(path)
	now := time.Now()
	doc := &models.Document{
		ID:        uuid.New().String(),
		Name:      name,
		FileType:  fileType(name),
		CreatedAt: now,
		Metadata: map[string]any{
			"source":     name,
			"created_at": now.Format(time.RFC3339),
		},
	}
	doc.Metadata["file_type"] = doc.FileType

	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		if err := loadCSV(doc, data); err != nil {
			return nil, err
		}
		return doc, nil
	}

	loadText(doc, data)
	return doc, nil
}

// fileType maps a file name to its logical type. The ".pdf.txt" convention
// marks pre-extracted PDF text.
func fileType(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".pdf.txt") {
		return "pdf"
	}
	switch filepath.Ext(lower) {
	case ".md":
		return "md"
	case ".csv":
		return "csv"
	default:
		return "txt"
	}
}

// loadText profiles plain text and markdown content.
func loadText(doc *models.Document, data []byte) {
	content := string(data)
	doc.Content = content
	doc.Metadata["line_count"] = len(strings.Split(content, "\n"))
	doc.Metadata["word_count"] = len(strings.Fields(content))
}

// loadCSV renders rows as labeled lines and records the table profile.
func loadCSV(doc *models.Document, data []byte) error {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse CSV %s: %w", doc.Name, err)
	}
	if len(records) == 0 {
		doc.Metadata["row_count"] = 0
		doc.Metadata["column_count"] = 0
		return nil
	}

	header := records[0]
	var sb strings.Builder
	for _, row := range records[1:] {
		fields := make([]string, 0, len(row))
		for i, value := range row {
			label := fmt.Sprintf("col%d", i+1)
			if i < len(header) {
				label = header[i]
			}
			fields = append(fields, label+": "+value)
		}
		sb.WriteString(strings.Join(fields, ", "))
		sb.WriteString("\n")
	}

	doc.Content = sb.String()
	doc.Metadata["row_count"] = len(records) - 1
	doc.Metadata["column_count"] = len(header)
	doc.Metadata["columns"] = strings.Join(header, ", ")
	return nil
}
