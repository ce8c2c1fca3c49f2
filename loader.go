package premiumbonds

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadTable reads a prize table from src.
//
// src is either empty, for the DefaultTable, a local .json, .yaml or .yml
// file, or an http(s) URL serving JSON. Remote tables are cached on disk for
// the day.
//
// For JSON documents, path is a JSONPath expression selecting the table
// object inside the document, so that a table can be read straight from a
// larger published document. An empty path selects the whole document.
func LoadTable(src, path string) (*Table, error) {
	return loadTable(daily(), src, path)
}

func loadTable(client *http.Client, src, path string) (*Table, error) {
	if src == "" {
		return DefaultTable(), nil
	}

	var (
		content []byte
		err     error
	)
	remote := strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
	if remote {
		content, err = wget(client, src)
	} else {
		content, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read prize table %q: %w", src, err)
	}
	log.WithFields(log.Fields{"src": src, "bytes": len(content)}).Debug("prize table read")

	var table *Table
	switch ext := strings.ToLower(filepath.Ext(src)); {
	case !remote && (ext == ".yaml" || ext == ".yml"):
		table, err = decodeYAMLTable(content)
	default:
		table, err = decodeJSONTable(content, path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot decode prize table %q: %w", src, err)
	}
	if table.Name == "" {
		table.Name = filepath.Base(src)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func decodeYAMLTable(content []byte) (*Table, error) {
	table := new(Table)
	if err := yaml.Unmarshal(content, table); err != nil {
		return nil, err
	}
	return table, nil
}

func decodeJSONTable(content []byte, path string) (*Table, error) {
	if path == "" {
		path = "$"
	}
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if list, ok := selected.([]any); ok && len(list) > 0 {
		if _, isObject := list[0].(map[string]any); isObject {
			selected = list[0]
		}
	}

	// round trip the selection through the Table decoder
	raw, err := json.Marshal(selected)
	if err != nil {
		return nil, err
	}
	table := new(Table)
	if err := json.Unmarshal(raw, table); err != nil {
		return nil, fmt.Errorf("%q does not select a prize table: %w", path, err)
	}
	return table, nil
}
