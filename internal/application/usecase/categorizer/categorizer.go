// Package categorizer assigns a category to a transaction from its merchant
// text. Learned merchant mappings always win over the fixed keyword rules.
package categorizer

import (
	"strings"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// keywordRule maps merchant substrings to a category name. Rules are checked
// in declaration order; the first hit wins.
type keywordRule struct {
	keywords []string
	category string
}

var keywordRules = []keywordRule{
	{keywords: []string{"zomato", "swiggy", "food"}, category: "Food"},
	{keywords: []string{"uber", "ola", "petrol"}, category: "Transport"},
	{keywords: []string{"netflix", "spotify", "prime"}, category: "Entertainment"},
}

// Categorize resolves a merchant to a category. Lookup order: the learned
// mapping keyed by the exact lowercased merchant, then substring matches
// against the keyword rules, then the first category as the deterministic
// default. A learned name that no longer resolves to a category also falls
// back to the first category.
//
// Categories must be non-empty; with an empty slice the zero Category is
// returned.
func Categorize(merchant string, categories []entity.Category, learned map[string]string) entity.Category {
	if len(categories) == 0 {
		return entity.Category{}
	}

	lowered := strings.ToLower(merchant)

	if name, ok := learned[lowered]; ok {
		return findByName(categories, name)
	}

	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return findByName(categories, rule.category)
			}
		}
	}

	return categories[0]
}

func findByName(categories []entity.Category, name string) entity.Category {
	for _, c := range categories {
		if c.Name == name {
			return c
		}
	}
	return categories[0]
}
