package tail

import (
	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// Batch is the result of filtering one poll response against the window.
type Batch struct {
	// New holds unseen records in server order (newest first).
	New []domain.LogRecord
	// Display is the prefix of New that should be printed.
	Display []domain.LogRecord
	// Gap is set when a non-first poll was saturated with new records, so
	// events between polls may have been missed.
	Gap bool
}

// Select filters records against seen, decides what to display and then
// records every new key in seen. Records are compared only against keys from
// earlier calls; two records in one batch sharing a key count once.
//
// On the first poll only the newest initialLines new records are displayed.
func Select(records []domain.LogRecord, seen *SeenWindow, firstPoll bool, initialLines, maxRecords int) Batch {
	var b Batch
	batchKeys := make(map[domain.RecordKey]struct{}, len(records))
	for _, rec := range records {
		key := rec.Key()
		if seen.Contains(key) {
			continue
		}
		if _, dup := batchKeys[key]; dup {
			continue
		}
		batchKeys[key] = struct{}{}
		b.New = append(b.New, rec)
	}

	b.Gap = !firstPoll && len(b.New) >= maxRecords

	if firstPoll {
		n := initialLines
		if n < 0 {
			n = 0
		}
		if n > len(b.New) {
			n = len(b.New)
		}
		b.Display = b.New[:n]
	} else {
		b.Display = b.New
	}

	for _, rec := range b.New {
		seen.Add(rec.Key())
	}
	return b
}
