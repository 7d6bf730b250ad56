package quadsql

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"modernc.org/sqlite/vtab"
)

// ModuleName is the virtual table module name.
const ModuleName = "quad"

// DefaultK is used when a query does not constrain k.
const DefaultK = 10

const (
	colLabel = iota
	colK
	colRank
)

const (
	idxNone = iota
	idxMatch
	idxMatchK
)

// Source answers neighbour queries by label.
type Source interface {
	Similar(label string, k int) ([]string, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Source{}
)

var (
	moduleOnce sync.Once
	moduleErr  error
)

// RegisterModule installs the quad module. Registration only reaches
// connections opened afterwards, so call it before the first sql.DB query.
func RegisterModule() error {
	moduleOnce.Do(func() {
		err := vtab.RegisterModule(nil, ModuleName, &Module{})
		if err != nil && !strings.Contains(err.Error(), "already registered") {
			moduleErr = err
		}
	})
	return moduleErr
}

// Register binds source under name so that
// CREATE VIRTUAL TABLE ... USING quad(name) can find it.
func Register(name string, source Source) error {
	if name == "" || source == nil {
		return fmt.Errorf("quadsql: name and source are required")
	}
	registryMu.Lock()
	registry[strings.ToLower(name)] = source
	registryMu.Unlock()
	return RegisterModule()
}

// Unregister removes a bound source.
func Unregister(name string) {
	registryMu.Lock()
	delete(registry, strings.ToLower(name))
	registryMu.Unlock()
}

func lookup(name string) (Source, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[strings.ToLower(name)]
	return s, ok
}

// Module creates quad tables.
type Module struct{}

// Table is a quad virtual table bound to one source.
type Table struct {
	source string
}

// Cursor iterates neighbours of one MATCH query.
type Cursor struct {
	table *Table
	k     int
	rows  []string
	pos   int
}

// Create declares the table schema.
func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

// Connect attaches to an existing table.
func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

func (m *Module) connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	if len(args) < 4 {
		return nil, fmt.Errorf("quadsql: USING %s(source) expects a source name", ModuleName)
	}
	source := strings.Trim(strings.TrimSpace(args[3]), `'"`)
	if _, ok := lookup(source); !ok {
		return nil, fmt.Errorf("quadsql: unknown source %q", source)
	}
	if err := ctx.Declare(fmt.Sprintf("CREATE TABLE %s(label TEXT, k INTEGER HIDDEN, rank INTEGER HIDDEN)", args[2])); err != nil {
		return nil, err
	}
	return &Table{source: source}, nil
}

// BestIndex pushes down MATCH on label and equality on k.
func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	var match, k *vtab.Constraint
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if !c.Usable {
			continue
		}
		switch {
		case c.Column == colLabel && c.Op == vtab.OpMATCH:
			match = c
		case c.Column == colK && c.Op == vtab.OpEQ:
			k = c
		}
	}
	if match == nil {
		info.IdxNum = idxNone
		return nil
	}
	match.ArgIndex = 0
	match.Omit = true
	info.IdxNum = idxMatch
	if k != nil {
		k.ArgIndex = 1
		k.Omit = true
		info.IdxNum = idxMatchK
	}
	return nil
}

// Open allocates a new cursor.
func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{table: t}, nil }

// Disconnect releases nothing.
func (t *Table) Disconnect() error { return nil }

// Destroy releases nothing; sources outlive tables.
func (t *Table) Destroy() error { return nil }

// Filter runs the neighbour query.
func (c *Cursor) Filter(idxNum int, _ string, vals []vtab.Value) error {
	c.rows, c.pos, c.k = nil, 0, DefaultK
	if idxNum == idxNone || len(vals) == 0 {
		return nil
	}
	label, err := asString(vals[0])
	if err != nil {
		return err
	}
	if idxNum == idxMatchK && len(vals) > 1 {
		if c.k, err = asInt(vals[1]); err != nil {
			return err
		}
	}
	source, ok := lookup(c.table.source)
	if !ok {
		return fmt.Errorf("quadsql: source %q no longer registered", c.table.source)
	}
	c.rows, err = source.Similar(label, c.k)
	return err
}

// Next advances the cursor.
func (c *Cursor) Next() error {
	if c.pos < len(c.rows) {
		c.pos++
	}
	return nil
}

// Eof reports end-of-rows.
func (c *Cursor) Eof() bool { return c.pos >= len(c.rows) }

// Column returns the value of a column in the current row.
func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return nil, fmt.Errorf("quadsql: Column out of range (pos=%d,len=%d)", c.pos, len(c.rows))
	}
	switch col {
	case colLabel:
		return c.rows[c.pos], nil
	case colK:
		return int64(c.k), nil
	case colRank:
		return int64(c.pos + 1), nil
	}
	return nil, fmt.Errorf("quadsql: unsupported column %d", col)
}

// Rowid returns the current rowid.
func (c *Cursor) Rowid() (int64, error) { return int64(c.pos + 1), nil }

// Close releases resources.
func (c *Cursor) Close() error { c.rows = nil; c.pos = 0; return nil }

func asString(v vtab.Value) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	default:
		return "", fmt.Errorf("quadsql: MATCH expects TEXT, got %T", v)
	}
}

func asInt(v vtab.Value) (int, error) {
	switch val := v.(type) {
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("quadsql: cannot parse k %q: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("quadsql: unsupported k type %T", v)
	}
}
