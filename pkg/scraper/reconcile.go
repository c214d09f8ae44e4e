package scraper

import "github.com/Crazytieguy/type-harder/models"

// Reconcile merges a fresh parse against the paragraphs already stored for
// the same article. Paragraphs are matched by position (IndexInArticle), not
// content: a fresh paragraph whose index already exists replaces that row in
// place, preserving its id for downstream references; stored indices the new
// parse no longer produces are deleted. Pure function, independent of the
// storage layer.
func Reconcile(oldByIndex map[int]int64, fresh []models.Paragraph) (upserts []models.Paragraph, deleteIDs []int64) {
	seen := make(map[int]bool, len(fresh))
	upserts = make([]models.Paragraph, 0, len(fresh))
	for _, p := range fresh {
		if id, ok := oldByIndex[p.IndexInArticle]; ok {
			p.ID = id
		}
		seen[p.IndexInArticle] = true
		upserts = append(upserts, p)
	}
	for index, id := range oldByIndex {
		if !seen[index] {
			deleteIDs = append(deleteIDs, id)
		}
	}
	return upserts, deleteIDs
}
