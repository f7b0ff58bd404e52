package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/domain"
)

// FormatArchetypes renders the stored archetype catalog.
func FormatArchetypes(archetypes []domain.Archetype) string {
	if len(archetypes) == 0 {
		return Dim("No archetypes stored.") + "\n"
	}
	rows := make([][]string, 0, len(archetypes))
	for _, a := range archetypes {
		rows = append(rows, []string{
			a.ID,
			a.Name,
			a.Category,
			a.MidTier.Cost.String(),
			a.Senior.Cost.String(),
			strings.Join(a.Keywords, ", "),
		})
	}
	return RenderTable([]string{"ID", "NAME", "CATEGORY", "MID-LEVEL", "SENIOR", "KEYWORDS"}, rows)
}

// FormatFeatures renders the feature catalog; hidden entries are flagged.
func FormatFeatures(features []domain.CatalogFeature) string {
	if len(features) == 0 {
		return Dim("No features in the catalog.") + "\n"
	}
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		state := ""
		if f.Hidden {
			state = Dim("hidden")
		}
		rows = append(rows, []string{f.ID, f.Label, state})
	}
	return RenderTable([]string{"ID", "LABEL", ""}, rows)
}

// FormatImportHistory renders knowledge-base imports, newest first as given.
func FormatImportHistory(imports []*domain.KBImport, now time.Time) string {
	if len(imports) == 0 {
		return Dim("No imports recorded.") + "\n"
	}
	rows := make([][]string, 0, len(imports))
	for _, imp := range imports {
		rows = append(rows, []string{
			TruncID(imp.ID),
			imp.Source,
			strconv.Itoa(imp.ArchetypeCount),
			strconv.Itoa(imp.FeatureCount),
			HumanTimestampFrom(imp.ImportedAt, now),
		})
	}
	return RenderTableAligned([]string{"ID", "SOURCE", "ARCHETYPES", "FEATURES", "IMPORTED"}, rows, map[int]bool{2: true, 3: true})
}

// FormatImportResult renders the outcome of a knowledge-base import.
func FormatImportResult(res app.ImportResult) string {
	src := ""
	if res.Import != nil {
		src = " from " + res.Import.Source
	}
	return fmt.Sprintf("%s Imported %d archetypes and %d features%s\n",
		StyleGreen.Render("✔"), res.ArchetypeCount, res.FeatureCount, src)
}
