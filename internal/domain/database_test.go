package domain

import "testing"

func TestSortDatabases_YearsBeforeCustom(t *testing.T) {
	databases := []DatabaseInfo{
		{ID: "custom_b", Name: "Retreat Fund", IsYear: false},
		{ID: "year_2026", Name: "2026년", IsYear: true, Year: 2026},
		{ID: "custom_a", Name: "Building Fund", IsYear: false},
		{ID: "year_2024", Name: "2024년", IsYear: true, Year: 2024},
		{ID: "year_2025", Name: "2025년", IsYear: true, Year: 2025},
	}

	SortDatabases(databases)

	want := []string{"year_2024", "year_2025", "year_2026", "custom_a", "custom_b"}
	for i, id := range want {
		if databases[i].ID != id {
			t.Errorf("Expected %s at position %d, got %s", id, i, databases[i].ID)
		}
	}
}

func TestSortDatabases_Stable(t *testing.T) {
	databases := []DatabaseInfo{
		{ID: "custom_1", Name: "Fund", IsYear: false},
		{ID: "custom_2", Name: "Fund", IsYear: false},
	}

	SortDatabases(databases)

	if databases[0].ID != "custom_1" || databases[1].ID != "custom_2" {
		t.Errorf("Expected stable order for equal names, got %s, %s", databases[0].ID, databases[1].ID)
	}
}

func TestFindDatabase(t *testing.T) {
	config := &AppConfig{
		Databases: []DatabaseInfo{
			{ID: "year_2025", Name: "2025년", IsYear: true, Year: 2025},
		},
		CurrentDatabaseID: "year_2025",
	}

	if found := config.FindDatabase("year_2025"); found == nil {
		t.Fatal("Expected to find year_2025")
	} else if found.Year != 2025 {
		t.Errorf("Expected year 2025, got %d", found.Year)
	}

	if found := config.FindDatabase("year_1999"); found != nil {
		t.Errorf("Expected nil for missing id, got %+v", found)
	}
}

func TestYearDatabaseID(t *testing.T) {
	if id := YearDatabaseID(2025); id != "year_2025" {
		t.Errorf("Expected year_2025, got %s", id)
	}
}
