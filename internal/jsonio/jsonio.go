// Package jsonio loads JSON documents from disk with configurable text
// encoding.
package jsonio

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Load reads a JSON file and decodes it into a generic object tree. The
// top-level value must be an object. Non-UTF-8 files are transcoded using
// the IANA-registered encoding name from the configuration.
func Load(path, encodingName string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ParseError{Path: path, Message: "failed to read file", Cause: err}
	}

	decoded, err := decodeText(raw, encodingName)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "failed to decode file encoding", Cause: err}
	}

	var data map[string]any
	if err := json.Unmarshal(decoded, &data); err != nil {
		return nil, &ParseError{Path: path, Message: "invalid JSON file", Cause: err}
	}
	return data, nil
}

func decodeText(raw []byte, encodingName string) ([]byte, error) {
	name := strings.ToLower(strings.TrimSpace(encodingName))
	if name == "" || name == "utf-8" || name == "utf8" {
		return raw, nil
	}

	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", encodingName)
	}
	return enc.NewDecoder().Bytes(raw)
}
