package outline

import "testing"

func TestAssignLevels_SizesMapToDescendingLevels(t *testing.T) {
	cands := []Candidate{
		{Text: "Introduction", Size: 18, Page: 2},
		{Text: "Background", Size: 14, Page: 2},
		{Text: "Methods", Size: 18, Page: 3},
		{Text: "Sampling Detail", Size: 12, Page: 4},
	}
	entries := AssignLevels(cands, "", nil, DefaultConfig())

	wantLevels := []string{"H1", "H2", "H1", "H3"}
	if len(entries) != len(wantLevels) {
		t.Fatalf("expected %d entries, got %d", len(wantLevels), len(entries))
	}
	for i, want := range wantLevels {
		if entries[i].Level != want {
			t.Errorf("entry %d (%q): expected %s, got %s", i, entries[i].Text, want, entries[i].Level)
		}
	}
}

func TestAssignLevels_ResidualSizesBucketToLowestLevel(t *testing.T) {
	cands := []Candidate{
		{Text: "A", Size: 20, Page: 1},
		{Text: "B", Size: 18, Page: 1},
		{Text: "C", Size: 16, Page: 2},
		{Text: "D", Size: 14, Page: 2},
		{Text: "E", Size: 12, Page: 3},
		{Text: "F", Size: 11, Page: 3},
	}
	entries := AssignLevels(cands, "", nil, DefaultConfig())

	if entries[4].Level != "H4" || entries[5].Level != "H4" {
		t.Errorf("sizes below the top 4 must bucket to H4, got %s and %s",
			entries[4].Level, entries[5].Level)
	}
}

func TestAssignLevels_PreservesDocumentOrder(t *testing.T) {
	cands := []Candidate{
		{Text: "Small First", Size: 12, Page: 1},
		{Text: "Large Second", Size: 20, Page: 2},
	}
	entries := AssignLevels(cands, "", nil, DefaultConfig())

	if entries[0].Text != "Small First" || entries[1].Text != "Large Second" {
		t.Errorf("level assignment must not reorder entries: %v", entries)
	}
	if entries[0].Level != "H2" || entries[1].Level != "H1" {
		t.Errorf("expected H2 then H1, got %s then %s", entries[0].Level, entries[1].Level)
	}
}

func TestAssignLevels_DeduplicatesCaseInsensitively(t *testing.T) {
	cands := []Candidate{
		{Text: "Overview", Size: 16, Page: 1},
		{Text: "OVERVIEW", Size: 16, Page: 3},
	}
	entries := AssignLevels(cands, "", nil, DefaultConfig())

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after dedup, got %d", len(entries))
	}
	if entries[0].Page != 1 {
		t.Errorf("first occurrence must win, got page %d", entries[0].Page)
	}
}

func TestAssignLevels_ExcludesTitleAndCoverText(t *testing.T) {
	cands := []Candidate{
		{Text: "Annual Report 2024", Size: 20, Page: 1},
		{Text: "Prepared by the Board", Size: 16, Page: 1},
		{Text: "Introduction", Size: 16, Page: 2},
	}
	cover := map[string]struct{}{"prepared by the board": {}}
	entries := AssignLevels(cands, "Annual Report 2024", cover, DefaultConfig())

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(entries), entries)
	}
	if entries[0].Text != "Introduction" {
		t.Errorf("got %q", entries[0].Text)
	}
}

func TestAssignLevels_EmptyInput(t *testing.T) {
	if entries := AssignLevels(nil, "Title", nil, DefaultConfig()); entries != nil {
		t.Errorf("expected nil for empty candidate set, got %v", entries)
	}
}
