package repository

import (
	"fmt"
	"time"
)

// hiddenFlag is the feature_catalog.hidden column value for a visibility flag.
func hiddenFlag(hidden bool) int {
	if hidden {
		return 1
	}
	return 0
}

// importStamp normalizes an import time to whole UTC seconds, defaulting to
// now, and returns it with its kb_imports.imported_at text.
func importStamp(t time.Time) (time.Time, string) {
	if t.IsZero() {
		t = time.Now()
	}
	t = t.UTC().Truncate(time.Second)
	return t, t.Format(time.RFC3339)
}

func parseImportStamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing imported_at %q: %w", s, err)
	}
	return t, nil
}
