package ivd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Collection names found in the Unicode IVD.
const (
	AdobeJapan1 = "Adobe-Japan1"
	HanyoDenshi = "Hanyo-Denshi"
	MojiJoho    = "Moji_Joho"
)

// Table maps code sequences to glyph identifiers of one collection, and back.
type Table struct {
	collection string
	forward    map[Key]string
	inverse    map[string]Key
	skipped    int
}

func newTable(collection string) *Table {
	return &Table{
		collection: collection,
		forward:    make(map[Key]string),
		inverse:    make(map[string]Key),
	}
}

// Load reads the registry at path and returns the entries of collection.
func Load(path, collection string) (*Table, error) {
	reg, err := LoadRegistry(path, collection)
	if err != nil {
		return nil, err
	}
	return reg[collection], nil
}

// Parse reads a registry from r and returns the entries of collection.
func Parse(r io.Reader, collection string) (*Table, error) {
	reg, err := ParseRegistry(r, collection)
	if err != nil {
		return nil, err
	}
	return reg[collection], nil
}

// Collection returns the collection name the table was built for.
func (t *Table) Collection() string { return t.collection }

// Len returns the number of code sequences in the table.
func (t *Table) Len() int { return len(t.forward) }

// Skipped returns the number of non-comment lines that had fewer than three
// fields. Such lines are ignored while loading.
func (t *Table) Skipped() int { return t.skipped }

// Lookup returns the glyph identifier registered for k.
func (t *Table) Lookup(k Key) (string, bool) {
	if t == nil {
		return "", false
	}
	id, ok := t.forward[k]
	return id, ok
}

// Sequence returns the code sequence registered for the glyph identifier id.
func (t *Table) Sequence(id string) (Key, bool) {
	if t == nil {
		return "", false
	}
	k, ok := t.inverse[id]
	return k, ok
}

// Registry holds one Table per requested collection.
type Registry map[string]*Table

// LoadRegistry reads the registry at path in a single pass and builds a table
// for every named collection. Collections absent from the file yield empty
// tables.
func LoadRegistry(path string, collections ...string) (Registry, error) {
	// #nosec G304 -- registry path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrResourceNotFound, path, err)
		}
		return nil, fmt.Errorf("ivd: open registry: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseRegistry(f, collections...)
}

// ParseRegistry is LoadRegistry for an already opened stream.
// A leading byte order mark is tolerated.
func ParseRegistry(r io.Reader, collections ...string) (Registry, error) {
	reg := make(Registry, len(collections))
	byName := make(map[string]*Table, len(collections))
	for _, c := range collections {
		t := newTable(c)
		reg[c] = t
		byName[squeeze(c)] = t
	}

	dec := transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ";")
		if len(parts) < 3 {
			for _, t := range reg {
				t.skipped++
			}
			continue
		}
		t, ok := byName[squeeze(parts[1])]
		if !ok {
			continue
		}
		key := Key(strings.Join(strings.Fields(parts[0]), " "))
		id := squeeze(parts[2])
		// Later lines overwrite earlier ones.
		if old, dup := t.forward[key]; dup && t.inverse[old] == key {
			delete(t.inverse, old)
		}
		t.forward[key] = id
		t.inverse[id] = key
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ivd: read registry: %w", err)
	}
	return reg, nil
}

// squeeze removes every white space rune from s.
func squeeze(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
