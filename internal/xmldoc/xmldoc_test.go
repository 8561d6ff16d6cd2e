package xmldoc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	doc := Load(filepath.Join(t.TempDir(), "nope.xml"))
	if len(doc) != 0 {
		t.Errorf("Expected empty document for missing file, got %v", doc)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xml")
	if err := os.WriteFile(path, []byte("<gameList><game></gameList>"), 0644); err != nil {
		t.Fatal(err)
	}

	doc := Load(path)
	if len(doc) != 0 {
		t.Errorf("Expected empty document for malformed file, got %v", doc)
	}
}

func TestAsList(t *testing.T) {
	node := map[string]interface{}{"path": "./a.bat"}

	tests := []struct {
		name     string
		value    interface{}
		expected int
	}{
		{"absent", nil, 0},
		{"single element", node, 1},
		{"list of elements", []interface{}{node, node, node}, 3},
		{"leaf value", "text", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsList(tt.value); len(got) != tt.expected {
				t.Errorf("Expected %d nodes, got %d", tt.expected, len(got))
			}
		})
	}
}

func TestChildListNormalizesSingleGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameList.xml")
	xml := `<gameList><game><path>./a.bat</path><name>A</name></game></gameList>`
	if err := os.WriteFile(path, []byte(xml), 0644); err != nil {
		t.Fatal(err)
	}

	games := ChildList(Load(path), "gameList", "game")
	if len(games) != 1 {
		t.Fatalf("Expected 1 game, got %d", len(games))
	}
	if Str(games[0], "path") != "./a.bat" {
		t.Errorf("Expected path ./a.bat, got %q", Str(games[0], "path"))
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gameList.xml")
	xml := `<gameList>
  <game><path>./a.bat</path><name>Alpha</name><rating>0.8</rating></game>
  <game><path>./b.bat</path><name>Beta</name></game>
</gameList>`
	if err := os.WriteFile(path, []byte(xml), 0644); err != nil {
		t.Fatal(err)
	}

	doc := Load(path)
	rewritten := filepath.Join(dir, "rewritten.xml")
	if err := Save(rewritten, doc); err != nil {
		t.Fatal(err)
	}

	games := ChildList(Load(rewritten), "gameList", "game")
	if len(games) != 2 {
		t.Fatalf("Expected 2 games after round-trip, got %d", len(games))
	}

	byPath := map[string]Document{}
	for _, g := range games {
		byPath[Str(g, "path")] = g
	}
	if Str(byPath["./a.bat"], "name") != "Alpha" || Str(byPath["./a.bat"], "rating") != "0.8" {
		t.Errorf("Round-trip lost fields of ./a.bat: %v", byPath["./a.bat"])
	}
	if Str(byPath["./b.bat"], "name") != "Beta" {
		t.Errorf("Round-trip lost fields of ./b.bat: %v", byPath["./b.bat"])
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ES-DE", "gamelists", "steam", "gameList.xml")
	doc := Document{"gameList": map[string]interface{}{}}

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file to exist: %v", err)
	}
}

func TestStr(t *testing.T) {
	node := Document{
		"name":   "Alpha",
		"nested": map[string]interface{}{"x": "y"},
	}

	if got := Str(node, "name"); got != "Alpha" {
		t.Errorf("Expected Alpha, got %q", got)
	}
	if got := Str(node, "missing"); got != "" {
		t.Errorf("Expected empty string for missing key, got %q", got)
	}
	if got := Str(node, "nested"); got != "" {
		t.Errorf("Expected empty string for non-leaf, got %q", got)
	}
}
