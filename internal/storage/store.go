package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"

	"github.com/san-kum/tabula/internal/config"
	"github.com/san-kum/tabula/internal/grid"
)

const tableExt = ".yaml"

var (
	ErrNotFound    = errors.New("storage: table not found")
	ErrInvalidName = errors.New("storage: invalid table name")
)

// Store keeps table files in a directory, one YAML file per table, and
// caches the interpolators built from them.
type Store struct {
	baseDir string
	logger  l.Wrapper
	built   *cache.Cache
}

// New returns a Store rooted at baseDir. Built interpolators stay cached for
// ttl after their last build; a non-positive ttl keeps them until the table
// changes.
func New(baseDir string, ttl time.Duration, logger l.Wrapper) *Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	cleanup := ttl
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	return &Store{
		baseDir: baseDir,
		logger:  logger.WithFields(l.StringField(l.ClsKey, "Store")),
		built:   cache.New(ttl, cleanup),
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.baseDir, name+tableExt), nil
}

// TableInfo summarises a stored table.
type TableInfo struct {
	Name        string
	Description string
	Rank        int
	Shape       []int
	Axes        []string
}

func (s *Store) Save(t *config.Table) error {
	path, err := s.path(t.Name)
	if err != nil {
		return err
	}
	if err := config.Save(path, t); err != nil {
		return err
	}
	s.built.Delete(t.Name)
	s.logger.WithFields(l.StringField("table", t.Name), l.IntField("rank", t.Rank())).Debug("table saved")
	return nil
}

func (s *Store) Load(name string) (*config.Table, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	t, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return t, nil
}

// List returns every readable table sorted by name. Files that fail to
// parse are logged and skipped.
func (s *Store) List() ([]TableInfo, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TableInfo{}, nil
		}
		return nil, err
	}

	tables := make([]TableInfo, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != tableExt {
			continue
		}

		t, err := config.Load(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			s.logger.WithFields(l.StringField("file", entry.Name()), l.ErrorField(err)).Error("skip unreadable table")
			continue
		}

		tables = append(tables, TableInfo{
			Name:        t.Name,
			Description: t.Description,
			Rank:        t.Rank(),
			Shape:       t.Shape(),
			Axes:        t.AxisNames(),
		})
	}

	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return tables, nil
}

func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	s.built.Delete(name)
	s.logger.WithFields(l.StringField("table", name)).Debug("table deleted")
	return nil
}

// Interpolator loads and builds the named table, reusing a cached
// interpolator when the table has not changed through this Store.
func (s *Store) Interpolator(name string) (*grid.Multilinear, error) {
	if v, ok := s.built.Get(name); ok {
		m, _ := v.(*grid.Multilinear)
		return m, nil
	}

	t, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	m, err := t.Build()
	if err != nil {
		return nil, err
	}
	s.built.Set(name, m, cache.DefaultExpiration)
	s.logger.WithFields(l.StringField("table", name)).Debug("interpolator built")
	return m, nil
}
