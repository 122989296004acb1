package survey

import "strings"

// Rule assigns a category to any header containing one of its keywords
// (case-insensitive substring match). Rules are evaluated in order and
// the first match wins, so a header belongs to at most one category.
type Rule struct {
	Category Category
	Keywords []string
}

// DefaultRules returns the stock classification cascade. The five named
// categories match on their own label text; SESSION matches on an open
// list of per-criterion evaluation phrases. Callers may append keywords
// to the SESSION rule when forms introduce new criteria.
func DefaultRules() []Rule {
	return []Rule{
		{Category: CategoryProgramManagement, Keywords: []string{"PROGRAM MANAGEMENT"}},
		{Category: CategoryTrainingVenue, Keywords: []string{"TRAINING VENUE"}},
		{Category: CategoryFoodMeals, Keywords: []string{"FOOD/MEALS"}},
		{Category: CategoryAccommodation, Keywords: []string{"ACCOMMODATION"}},
		{Category: CategoryAdministrative, Keywords: []string{"ADMINISTRATIVE ARRANGEMENTS"}},
		{Category: CategorySession, Keywords: []string{
			"PROGRAM OBJECTIVES",
			"CONTENT RELEVANCE",
			"SUBJECT MATTER EXPERT KNOWLEDGE",
		}},
	}
}

// Assignment maps each category to the column indexes assigned to it,
// in table column order. Columns matching no rule appear nowhere.
type Assignment map[Category][]int

// Classify buckets a table's columns by header text alone. Row values
// never influence the result.
func Classify(t *Table, rules []Rule) Assignment {
	assignment := make(Assignment)
	for idx, col := range t.Columns {
		header := strings.ToUpper(col.Header)
		for _, rule := range rules {
			if matchesRule(header, rule) {
				assignment[rule.Category] = append(assignment[rule.Category], idx)
				break
			}
		}
	}
	return assignment
}

func matchesRule(upperHeader string, rule Rule) bool {
	for _, keyword := range rule.Keywords {
		if strings.Contains(upperHeader, keyword) {
			return true
		}
	}
	return false
}
