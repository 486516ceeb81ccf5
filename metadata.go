package mdfront

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alnah/go-mdfront/internal/metainfo"
	"github.com/alnah/go-mdfront/internal/yamlutil"
)

// Recognized metadata fields.
const (
	FieldTitle        = "title"
	FieldSummary      = "summary"
	FieldCreationDate = "creation_date"
	FieldLastModified = "last_modified"
	FieldPublishDate  = "publish_date"
	FieldSortOrder    = "sort_order"
	FieldCategory     = "category"
	FieldTags         = "tags"
	FieldAuthor       = "author"
	FieldSlug         = "slug"
)

// fieldDefaults lists recognized fields in the order they are appended.
var fieldDefaults = []struct {
	key   string
	value Value
}{
	{FieldTitle, StringValue("")},
	{FieldSummary, StringValue("")},
	{FieldCreationDate, StringValue("")},
	{FieldLastModified, StringValue("")},
	{FieldPublishDate, StringValue("")},
	{FieldSortOrder, StringValue("0")},
	{FieldCategory, StringValue("")},
	{FieldTags, ListValue()},
	{FieldAuthor, StringValue("")},
	{FieldSlug, StringValue("")},
}

// Value is a metadata value: a string or a list of strings.
type Value struct {
	str    string
	list   []string
	isList bool
}

// StringValue returns a scalar value.
func StringValue(s string) Value {
	return Value{str: s}
}

// ListValue returns a list value. The items are copied.
func ListValue(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{list: list, isList: true}
}

// IsList reports whether v holds a list.
func (v Value) IsList() bool { return v.isList }

// IsEmpty reports whether v is an empty string or an empty list.
func (v Value) IsEmpty() bool {
	if v.isList {
		return len(v.list) == 0
	}
	return v.str == ""
}

// String returns the scalar value, or list items joined by ", ".
func (v Value) String() string {
	if v.isList {
		return strings.Join(v.list, ", ")
	}
	return v.str
}

// List returns the list items. A non-empty scalar is returned as a
// single-item list.
func (v Value) List() []string {
	if !v.isList {
		if v.str == "" {
			return nil
		}
		return []string{v.str}
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// Interface returns the value as string or []string.
func (v Value) Interface() any {
	if v.isList {
		return v.List()
	}
	return v.str
}

// MarshalJSON encodes lists as arrays and scalars as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		list := v.list
		if list == nil {
			list = []string{}
		}
		return json.Marshal(list)
	}
	return json.Marshal(v.str)
}

// Metadata is an ordered mapping from field name to Value.
// The zero value is not usable; create with NewMetadata.
type Metadata struct {
	keys   []string
	values map[string]Value
}

// NewMetadata returns an empty Metadata.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]Value)}
}

// Len returns the number of fields.
func (m *Metadata) Len() int { return len(m.keys) }

// Keys returns the field names in insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Has reports whether key is present.
func (m *Metadata) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the value stored under key.
func (m *Metadata) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetString returns the string form of key, or "" when absent.
func (m *Metadata) GetString(key string) string {
	return m.values[key].String()
}

// Set stores v under key. An existing key keeps its position.
func (m *Metadata) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// SetString stores a scalar value under key.
func (m *Metadata) SetString(key, value string) {
	m.Set(key, StringValue(value))
}

// Delete removes key.
func (m *Metadata) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy.
func (m *Metadata) Clone() *Metadata {
	out := NewMetadata()
	for _, k := range m.keys {
		out.Set(k, m.values[k].clone())
	}
	return out
}

// Title returns the title field.
func (m *Metadata) Title() string { return m.GetString(FieldTitle) }

// Tags returns the tags field as a list.
func (m *Metadata) Tags() []string { return m.values[FieldTags].List() }

// ToMap returns a plain map of string and []string values.
func (m *Metadata) ToMap() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.values[k].Interface()
	}
	return out
}

// MarshalJSON encodes m as a JSON object, keeping field order.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := m.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes m as a YAML mapping, keeping field order.
func (m *Metadata) MarshalYAML() ([]byte, error) {
	items := make([]yamlutil.MapItem, 0, len(m.keys))
	for _, k := range m.keys {
		v := m.values[k]
		var val any = v.str
		if v.isList {
			list := v.list
			if list == nil {
				list = []string{}
			}
			val = list
		}
		items = append(items, yamlutil.MapItem{Key: k, Value: val})
	}
	return yamlutil.MarshalOrdered(items)
}

func (v Value) clone() Value {
	if v.isList {
		return ListValue(v.list...)
	}
	return v
}

// metadataFromFields converts parsed header fields.
func metadataFromFields(fields []metainfo.Field) *Metadata {
	m := NewMetadata()
	for _, f := range fields {
		if f.IsList {
			m.Set(f.Key, ListValue(f.List...))
			continue
		}
		m.SetString(f.Key, f.Value)
	}
	return m
}

// applyDefaults fills missing or empty recognized fields.
func applyDefaults(m *Metadata) {
	for _, d := range fieldDefaults {
		if v, ok := m.Get(d.key); !ok || v.IsEmpty() {
			m.Set(d.key, d.value.clone())
		}
	}
}

// normalizeTags turns a comma-separated tags string into a list.
func normalizeTags(m *Metadata) {
	v, ok := m.Get(FieldTags)
	if !ok || v.IsList() {
		return
	}
	m.Set(FieldTags, ListValue(metainfo.SplitList(v.String())...))
}
