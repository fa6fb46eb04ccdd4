// Package argmap assembles a binder.Binder's pairs into an
// order-preserving name->value mapping, the request body POSTed to the
// checker API. Go's map[string]any cannot preserve insertion order, so
// NamedArgumentMap is an explicit ordered structure instead.
package argmap

import (
	"bytes"
	"encoding/json"

	"github.com/haxtibal/i4w-callapi/argvalue"
	"github.com/haxtibal/i4w-callapi/binder"
)

type entry struct {
	name  string
	value argvalue.Value
}

// NamedArgumentMap is an ordered name→Value mapping. Keys are expected
// to be unique per invocation; inserting a repeated key overwrites the
// previous value in place, preserving its original position.
type NamedArgumentMap struct {
	entries []entry
	index   map[string]int
}

// Set inserts or overwrites name→value. A repeated key is last-write-
// wins but keeps its original slice position (insertion order is what
// the wire format preserves, not write order).
func (m *NamedArgumentMap) Set(name string, value argvalue.Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[name]; ok {
		m.entries[i].value = value
		return
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, entry{name: name, value: value})
}

// Len reports the number of distinct keys.
func (m *NamedArgumentMap) Len() int { return len(m.entries) }

// MarshalJSON encodes the map as a JSON object with keys written in
// insertion order, since the remote server relies on that order for
// positional equivalence of interleaved switches.
func (m NamedArgumentMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Build drains a binder.Binder over args into a NamedArgumentMap. The
// first binder error short-circuits and is returned; the map built so
// far is discarded, since a partial request body must never be sent.
func Build(args []string) (NamedArgumentMap, error) {
	b := binder.New(args)
	var m NamedArgumentMap
	for {
		pair, ok, err := b.Next()
		if err != nil {
			return NamedArgumentMap{}, err
		}
		if !ok {
			return m, nil
		}
		m.Set(pair.Name, pair.Value)
	}
}
