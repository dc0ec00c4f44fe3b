package categorizer

import (
	"testing"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func TestCategorizeKeywordRules(t *testing.T) {
	categories := entity.DefaultCategories()

	tests := []struct {
		merchant string
		want     string
	}{
		{"Zomato Order #123", "Food"},
		{"SWIGGY", "Food"},
		{"Uber Trip", "Transport"},
		{"ola cabs", "Transport"},
		{"Netflix Subscription", "Entertainment"},
		{"Amazon Prime Video", "Entertainment"},
		// No keyword hit: deterministic first-category default.
		{"Unknown Shop", categories[0].Name},
		{"", categories[0].Name},
	}

	for _, tt := range tests {
		got := Categorize(tt.merchant, categories, nil)
		if got.Name != tt.want {
			t.Fatalf("Categorize(%q) = %q, want %q", tt.merchant, got.Name, tt.want)
		}
	}
}

func TestCategorizeLearnedMappingWins(t *testing.T) {
	categories := append(entity.DefaultCategories(),
		*entity.NewCategory("Dining Out", entity.CategoryTypeExpense, "#FFAA00"))

	learned := map[string]string{"zomato": "Dining Out"}

	// The learned mapping beats the keyword table even though "zomato" is a
	// Food keyword.
	got := Categorize("zomato", categories, learned)
	if got.Name != "Dining Out" {
		t.Fatalf("learned merchant = %q, want Dining Out", got.Name)
	}

	// Learned lookup is an exact key match on the full lowercased merchant,
	// not a substring scan: a longer merchant misses the mapping and falls
	// through to the keyword rules.
	got = Categorize("Zomato Order #123", categories, learned)
	if got.Name != "Food" {
		t.Fatalf("unlearned merchant = %q, want Food", got.Name)
	}
}

func TestCategorizeStaleLearnedName(t *testing.T) {
	categories := entity.DefaultCategories()
	learned := map[string]string{"zomato": "Removed Category"}

	got := Categorize("zomato", categories, learned)
	if got.Name != categories[0].Name {
		t.Fatalf("stale learned name = %q, want first-category fallback %q", got.Name, categories[0].Name)
	}
}
