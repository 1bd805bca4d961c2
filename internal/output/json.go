package output

import (
	"encoding/json"

	"github.com/riftlens/riftlens/internal/core"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

func (f *JSONFormatter) marshal(v any) (string, error) {
	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FormatRanked renders one ranked lookup as JSON.
func (f *JSONFormatter) FormatRanked(info *core.RankedInfo) (string, error) {
	if info == nil {
		return "", nil
	}
	return f.marshal(info)
}

// FormatRoster renders the roster as JSON.
func (f *JSONFormatter) FormatRoster(players []*core.Player) (string, error) {
	return f.marshal(players)
}
