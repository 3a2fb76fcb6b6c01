package gauntlet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// CollisionError is returned when two tests in one run would be written to the same file.
type CollisionError struct {
	Path   string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%v and %v both write %v", e.First, e.Second, e.Path)
}

// A Generator writes test modules to a filesystem.
type Generator struct {
	fs     afero.Fs
	config Config
	log    *zap.Logger

	written map[string]string
}

// NewGenerator creates a generator that writes to fs. If log is nil, progress is not reported.
func NewGenerator(fs afero.Fs, config Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{fs: fs, config: NewConfig().Apply(config), log: log}
}

// Path returns the path of the file that holds the given test.
func (g *Generator) Path(t *Test) string {
	name := t.Name
	if ext := strings.TrimPrefix(g.config.Ext.String, "."); ext != "" {
		name += "." + ext
	}
	return filepath.Join(g.dir(t.Kind.Family()), name)
}

func (g *Generator) dir(f Family) string {
	if g.config.Split.Bool {
		return filepath.Join(g.config.Out.String, f.Theme())
	}
	return g.config.Out.String
}

// Generate writes one file per catalogue entry of each of the given families, in order. The first error stops
// generation.
func (g *Generator) Generate(families ...Family) error {
	g.written = map[string]string{}
	for _, f := range families {
		if err := g.generateFamily(f); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateFamily(f Family) error {
	if err := g.fs.MkdirAll(g.dir(f), 0755); err != nil {
		return fmt.Errorf("creating %v: %w", g.dir(f), err)
	}

	for _, entry := range f.Catalogue() {
		test, err := Resolve(entry)
		if err != nil {
			return err
		}
		g.log.Debug("resolved",
			zap.String("mnemonic", entry.Mnemonic),
			zap.Stringer("kind", entry.Kind),
			zap.Stringer("signature", test.Signature))

		if err := g.write(test); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) write(t *Test) (err error) {
	path := g.Path(t)
	if first, ok := g.written[path]; ok {
		return &CollisionError{Path: path, First: first, Second: t.Mnemonic}
	}
	g.written[path] = t.Mnemonic

	g.log.Info("Writing minimal test for " + t.Name)

	f, err := g.fs.Create(path)
	if err != nil {
		return fmt.Errorf("writing %v: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("writing %v: %w", path, cerr)
		}
	}()

	if err := WriteTo(f, t); err != nil {
		return fmt.Errorf("writing %v: %w", path, err)
	}
	return nil
}
