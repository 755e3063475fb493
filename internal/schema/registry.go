// Package schema holds the built-in wire formats the fuzzer can target.
package schema

import (
	"encoding/binary"
	"fmt"
	"sort"

	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// Entry is a registered schema.
type Entry struct {
	Name        string
	Description string
	Type        domain.Type
	// Order is the default wire byte order.
	Order binary.AppendByteOrder
}

// Info returns the listing row of the entry.
func (e Entry) Info() m.SchemaInfo {
	return m.SchemaInfo{
		Name:        e.Name,
		Description: e.Description,
		MinSize:     e.Type.MinNonzeroElementsSize(),
		MaxDefault:  e.Type.MaxDefaultObjectSize(),
		Variable:    e.Type.IsVariableSize(),
	}
}

var registry = map[string]Entry{}

func register(e Entry) {
	if _, dup := registry[e.Name]; dup {
		panic(fmt.Sprintf("schema %q registered twice", e.Name))
	}

	registry[e.Name] = e
}

func init() {
	register(Entry{
		Name:        "packet",
		Description: "request frame with an unsafe u32 operation and length-prefixed data",
		Type:        Packet(),
		Order:       binary.LittleEndian,
	})
	register(Entry{
		Name:        "ipv4",
		Description: "IPv4 header with bitfields and a repaired checksum",
		Type:        IPv4(),
		Order:       binary.BigEndian,
	})
	register(Entry{
		Name:        "message",
		Description: "tagged protocol message with strings, arrays and optional fields",
		Type:        Message(),
		Order:       binary.BigEndian,
	})
}

// Lookup returns the schema registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", m.ErrUnknownSchema, name)
	}

	return e, nil
}

// List returns every registered schema sorted by name.
func List() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}

// Names returns the registered schema names in order.
func Names() []string {
	entries := List()

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return names
}
