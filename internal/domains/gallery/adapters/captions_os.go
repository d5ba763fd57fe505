package adapters

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CaptionsFilename is the per-folder sidecar holding image captions.
const CaptionsFilename = "captions.csv"

type OSCaptionReader struct{}

func NewOSCaptionReader() OSCaptionReader {
	return OSCaptionReader{}
}

// Load reads <folder>/captions.csv into a filename→caption map.
// The header row names the columns; "filename" and "caption" are picked by
// exact name in any position and extra columns are ignored. Both fields are
// trimmed, rows with an empty filename are skipped, later duplicates win.
// A missing sidecar yields an empty map.
func (OSCaptionReader) Load(folder string) (map[string]string, error) {
	caps := map[string]string{}

	f, err := os.Open(filepath.Join(folder, CaptionsFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return caps, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate short and long rows

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return caps, nil
		}
		return nil, fmt.Errorf("read %s header: %w", CaptionsFilename, err)
	}

	nameCol, captionCol := -1, -1
	for i, col := range header {
		switch col {
		case "filename":
			nameCol = i
		case "caption":
			captionCol = i
		}
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", CaptionsFilename, err)
		}

		name := strings.TrimSpace(field(row, nameCol))
		if name == "" {
			continue
		}
		caps[name] = strings.TrimSpace(field(row, captionCol))
	}

	return caps, nil
}

// field returns row[i], treating a missing column or short row as empty.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
