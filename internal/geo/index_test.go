package geo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var sample = []Settlement{
	{ID: 703448, Name: "Kyiv", NameUk: "Київ", NameRu: "Киев", Population: 2963199, FeatureCode: "PPLC", Alt: []string{"Kiev"}},
	{ID: 702550, Name: "Lviv", NameUk: "Львів", NameRu: "Львов", Population: 717803, FeatureCode: "PPLA", Alt: []string{"Lemberg"}},
	{ID: 698740, Name: "Odesa", NameUk: "Одеса", NameRu: "Одесса", Population: 1015826, FeatureCode: "PPLA", Alt: []string{"Odessa"}},
	{ID: 709930, Name: "Dnipro", NameUk: "Дніпро", Population: 998103, FeatureCode: "PPLA"},
}

func TestSearch_ByLatinName(t *testing.T) {
	idx := NewIndexFromSettlements(sample)
	got := idx.Search("lvi", 10)
	if len(got) != 1 || got[0].ID != 702550 {
		t.Fatalf("Search(lvi) = %+v; want Lviv only", got)
	}
}

func TestSearch_ByUkrainianName_CaseFolded(t *testing.T) {
	idx := NewIndexFromSettlements(sample)
	got := idx.Search("ЛЬВІ", 10)
	if len(got) != 1 || got[0].Name != "Lviv" {
		t.Fatalf("Search(ЛЬВІ) = %+v; want Lviv", got)
	}
}

func TestSearch_ByAlternateSpelling(t *testing.T) {
	idx := NewIndexFromSettlements(sample)
	got := idx.Search("lemberg", 10)
	if len(got) != 1 || got[0].ID != 702550 {
		t.Fatalf("Search(lemberg) = %+v; want Lviv via alt name", got)
	}
}

func TestSearch_SubstringMatchesSeveral(t *testing.T) {
	idx := NewIndexFromSettlements(sample)
	// "од" hits Одеса (uk) substring; nothing else in the sample.
	got := idx.Search("одес", 10)
	if len(got) != 1 || got[0].Name != "Odesa" {
		t.Fatalf("Search(одес) = %+v; want Odesa", got)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	idx := NewIndexFromSettlements(sample)
	if got := idx.Search("   ", 10); got != nil {
		t.Fatalf("blank query returned %+v; want nil", got)
	}
}

func TestSearch_LimitAndDefaults(t *testing.T) {
	idx := NewIndexFromSettlements(sample, WithDefaultLimit(1), WithMaxLimit(2))

	// Non-positive limit falls back to the default.
	if got := idx.Search("v", 0); len(got) != 1 {
		t.Fatalf("default limit: got %d results; want 1", len(got))
	}
	// Oversized limit is capped.
	if got := idx.Search("p", 50); len(got) > 2 {
		t.Fatalf("max limit: got %d results; want <= 2", len(got))
	}
}

func TestSearch_NoMatch(t *testing.T) {
	idx := NewIndexFromSettlements(sample)
	if got := idx.Search("atlantis", 10); len(got) != 0 {
		t.Fatalf("Search(atlantis) = %+v; want empty", got)
	}
}

func TestNewIndexFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ua.settlements.json")
	data := `[{"id":703448,"name":"Kyiv","nameUk":"Київ","lat":50.45,"lon":30.52,"population":2963199,"featureCode":"PPLC","alt":["Kiev"]}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	idx, err := NewIndexFromFile(path)
	if err != nil {
		t.Fatalf("NewIndexFromFile: %v", err)
	}
	if got := idx.Search("kie", 5); len(got) != 1 || got[0].ID != 703448 {
		t.Fatalf("Search(kie) = %+v; want Kyiv via alt", got)
	}
}

func TestNewIndexFromFile_Missing(t *testing.T) {
	idx, err := NewIndexFromFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatalf("expected error for missing dataset")
	}
	// Still usable as an empty index.
	if got := idx.Search("kyiv", 5); len(got) != 0 {
		t.Fatalf("empty index returned %+v", got)
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("  Львів  ") != Normalize("ЛЬВІВ") {
		t.Fatalf("fold mismatch: %q vs %q", Normalize("  Львів  "), Normalize("ЛЬВІВ"))
	}
	if Normalize("") != "" || Normalize("   ") != "" {
		t.Fatalf("blank input must normalize to empty")
	}
	if !strings.Contains(Normalize("Kyiv City"), "kyiv") {
		t.Fatalf("latin folding failed: %q", Normalize("Kyiv City"))
	}
}
