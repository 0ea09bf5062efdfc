// ABOUTME: CSV export of journal entries
// ABOUTME: One row per entry with RFC3339 UTC timestamps
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/harper/moodjournal/internal/db"
)

// Header is the first CSV row.
var Header = []string{"id", "content", "mood", "sentiment", "created_at"}

// WriteCSV writes entries as CSV with a header row.
func WriteCSV(w io.Writer, entries []db.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, e := range entries {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Content,
			strconv.Itoa(e.Mood),
			strconv.FormatFloat(e.Sentiment, 'f', -1, 64),
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
