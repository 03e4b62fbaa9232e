package query

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Params is a flat JSON object that remembers key insertion order. The
// compiler walks filters in the order the client wrote them, so the SQL text
// produced for a given body is deterministic; a plain map would not be.
type Params struct {
	keys   []string
	values map[string]any
}

func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// ParseParams decodes a JSON object body. An empty or whitespace-only body
// decodes to an empty Params, matching how the API treats empty POST bodies.
func ParseParams(body []byte) (*Params, error) {
	p := NewParams()
	if len(bytes.TrimSpace(body)) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(body, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Params) UnmarshalJSON(data []byte) error {
	p.keys = nil
	p.values = make(map[string]any)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		p.Set(key, normalizeValue(value))
	}

	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// normalizeValue rewrites json.Number into int64 when integral, float64
// otherwise, recursively through arrays. Bind values then reach the driver
// as numbers instead of strings.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

func (p *Params) Set(key string, value any) {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *Params) Delete(key string) {
	if _, exists := p.values[key]; !exists {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns key names in insertion order.
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *Params) Len() int {
	return len(p.keys)
}
