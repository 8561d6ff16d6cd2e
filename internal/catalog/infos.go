package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/mcaralp/esde-steam-manager/internal/xmldoc"
)

// gameList.xml is owned by the ES-DE frontend; its location below the
// system folder is fixed.
var gamelistRelPath = filepath.Join("ES-DE", "gamelists", "steam", "gameList.xml")

// LoadInfos reads every record of the general info store under folder.
// Any read or parse failure degrades to an empty store.
func LoadInfos(folder string) []GameInfo {
	doc := xmldoc.Load(filepath.Join(folder, gamelistRelPath))

	nodes := xmldoc.ChildList(doc, "gameList", "game")
	records := make([]GameInfo, 0, len(nodes))
	for _, node := range nodes {
		records = append(records, infoFromNode(node))
	}
	return records
}

// SaveInfos upserts records into the general info store and rewrites it.
// The document is re-read from disk first so that fields and elements
// written by other tools since the last load are carried through.
func SaveInfos(folder string, records []GameInfo) error {
	file := filepath.Join(folder, gamelistRelPath)
	doc, nodes := loadGameNodes(file)

	for _, rec := range records {
		node := findByPath(nodes, rec.Path)
		if node == nil {
			node = xmldoc.Document{}
			nodes = append(nodes, node)
		}
		merged := mergeInfos(infoFromNode(node), rec)
		merged.applyToNode(node)
	}

	setGameNodes(doc, nodes)
	if err := xmldoc.Save(file, doc); err != nil {
		return fmt.Errorf("failed to save game info store: %w", err)
	}
	return nil
}

// loadGameNodes parses the document at file and returns it along with its
// normalized game element list.
func loadGameNodes(file string) (xmldoc.Document, []xmldoc.Document) {
	doc := xmldoc.Load(file)
	return doc, xmldoc.ChildList(doc, "gameList", "game")
}

// setGameNodes installs the game list back into the document, creating
// the root element when the store is brand new.
func setGameNodes(doc xmldoc.Document, nodes []xmldoc.Document) {
	root, ok := doc["gameList"].(map[string]interface{})
	if !ok {
		root = map[string]interface{}{}
		doc["gameList"] = root
	}
	games := make([]interface{}, len(nodes))
	for i, node := range nodes {
		games[i] = map[string]interface{}(node)
	}
	root["game"] = games
}

func findByPath(nodes []xmldoc.Document, gamePath string) xmldoc.Document {
	for _, node := range nodes {
		if xmldoc.Str(node, "path") == gamePath {
			return node
		}
	}
	return nil
}
