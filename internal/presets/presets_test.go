package presets

import "testing"

func TestGetKnownPreset(t *testing.T) {
	p, ok := Get("focus")
	if !ok {
		t.Fatal("expected focus preset to exist")
	}
	if p.Composition != "KineticTitle" {
		t.Errorf("expected KineticTitle, got %s", p.Composition)
	}
	if p.Props["text"] != "FOCUS ON WHAT MATTERS" {
		t.Errorf("unexpected text prop: %v", p.Props["text"])
	}
}

func TestGetUnknownPreset(t *testing.T) {
	if _, ok := Get("does_not_exist"); ok {
		t.Fatal("expected lookup miss for unknown preset")
	}
}

func TestNamesMatchTable(t *testing.T) {
	if len(Names) != len(table) {
		t.Fatalf("Names has %d entries, table has %d", len(Names), len(table))
	}
	seen := make(map[string]bool)
	for _, name := range Names {
		if seen[name] {
			t.Errorf("duplicate name %s", name)
		}
		seen[name] = true
		if _, ok := table[name]; !ok {
			t.Errorf("name %s missing from table", name)
		}
	}
}

func TestGrouped(t *testing.T) {
	groups := Grouped()

	total := 0
	for _, entries := range groups {
		total += len(entries)
	}
	if total != len(Names) {
		t.Errorf("grouped %d presets, want %d", total, len(Names))
	}

	kinetic := groups["KineticTitle"]
	if len(kinetic) != 4 {
		t.Fatalf("expected 4 KineticTitle presets, got %d", len(kinetic))
	}
	if kinetic[0].Name != "focus" {
		t.Errorf("expected focus first, got %s", kinetic[0].Name)
	}

	if len(groups["WalkingMan"]) != 2 {
		t.Errorf("expected 2 WalkingMan presets, got %d", len(groups["WalkingMan"]))
	}
}
