package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/slidediag/pkg/slide"
)

// JSON serializes a DiagDocument to indented JSON.
func JSON(doc *slide.DiagDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// JSONCompact serializes a DiagDocument to compact JSON.
func JSONCompact(doc *slide.DiagDocument) ([]byte, error) {
	return json.Marshal(doc)
}

// SaveJSONToFile writes the indented JSON form of doc to filepath with
// 0644 permissions.
func SaveJSONToFile(doc *slide.DiagDocument, filepath string) error {
	data, err := JSON(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
