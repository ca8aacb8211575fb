package doc_models

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed starter/*.json
var starterFS embed.FS

// StarterBlocks is the initial content of the documents created at approval.
type StarterBlocks struct {
	Overlay  json.RawMessage
	TipPage  json.RawMessage
	LinkTree json.RawMessage
}

// DefaultStarterBlocks loads the bundled starter content.
func DefaultStarterBlocks() (StarterBlocks, error) {
	var sb StarterBlocks
	for name, dst := range map[string]*json.RawMessage{
		"starter/overlay.json":   &sb.Overlay,
		"starter/tip_page.json":  &sb.TipPage,
		"starter/link_tree.json": &sb.LinkTree,
	} {
		raw, err := starterFS.ReadFile(name)
		if err != nil {
			return StarterBlocks{}, fmt.Errorf("read %s: %w", name, err)
		}
		if !json.Valid(raw) {
			return StarterBlocks{}, fmt.Errorf("%s is not valid JSON", name)
		}
		*dst = json.RawMessage(raw)
	}
	return sb, nil
}

// EmptyStarterBlocks provisions every document with an empty block list.
func EmptyStarterBlocks() StarterBlocks {
	empty := json.RawMessage("[]")
	return StarterBlocks{Overlay: empty, TipPage: empty, LinkTree: empty}
}
