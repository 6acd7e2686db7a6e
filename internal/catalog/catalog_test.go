package catalog

import (
	"testing"

	"mosaic-mind/internal/domain"
)

func TestQuestionsReturnsFullCatalog(t *testing.T) {
	qs := Questions()
	if len(qs) != 16 {
		t.Fatalf("expected 16 questions, got %d", len(qs))
	}
	if qs[0].ID != "emotion_1" {
		t.Fatalf("expected first question emotion_1, got %s", qs[0].ID)
	}

	// La copia no debe aliasar el catálogo interno.
	qs[0].ID = "mutated"
	if again := Questions(); again[0].ID != "emotion_1" {
		t.Fatalf("catalog was mutated through the returned slice")
	}
}

func TestFind(t *testing.T) {
	q, ok := Find("drive_3")
	if !ok {
		t.Fatalf("expected to find drive_3")
	}
	if q.Category != domain.CategoryDrive {
		t.Fatalf("expected category Drive, got %s", q.Category)
	}
	if !q.ReverseScored {
		t.Fatalf("expected drive_3 to be reverse scored")
	}

	if _, ok := Find("bogus"); ok {
		t.Fatalf("expected bogus id to be missing")
	}
}

func TestReverseScoredFlags(t *testing.T) {
	reversed := map[string]bool{"emotion_3": true, "intellect_3": true, "drive_3": true}
	for _, q := range Questions() {
		if q.ReverseScored != reversed[q.ID] {
			t.Fatalf("question %s: unexpected reverse flag %v", q.ID, q.ReverseScored)
		}
	}
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	want := []domain.PersonalityCategory{
		domain.CategoryEmotion,
		domain.CategoryIntellect,
		domain.CategorySocial,
		domain.CategoryDrive,
		domain.CategoryOpenness,
		domain.CategoryResilience,
	}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
