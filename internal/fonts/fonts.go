package fonts

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFont is what text shapes use unless told otherwise.
const DefaultFont = "PressStart2P"

var ErrUnknownFont = errors.New("unknown font")

var logger = log.New(os.Stderr, "fonts: ", log.LstdFlags)

// Library maps font names to TrueType data.
type Library struct {
	faces    map[string][]byte
	fallback string
	warned   map[string]bool
}

// NewLibrary returns a table seeded with the Go fonts. PressStart2P is an
// alias of GoMonoBold until a real file is registered under that name.
func NewLibrary() *Library {
	return &Library{
		faces: map[string][]byte{
			"GoRegular":  goregular.TTF,
			"GoBold":     gobold.TTF,
			"GoMono":     gomono.TTF,
			"GoMonoBold": gomonobold.TTF,
			DefaultFont:  gomonobold.TTF,
		},
		fallback: DefaultFont,
		warned:   make(map[string]bool),
	}
}

// Register adds or replaces a font. The data must parse as OpenType.
func (l *Library) Register(name string, ttf []byte) error {
	if _, err := opentype.Parse(ttf); err != nil {
		return fmt.Errorf("failed to parse font %q: %w", name, err)
	}
	l.faces[name] = ttf
	return nil
}

// RegisterFile reads a font file from disk and registers it under name.
func (l *Library) RegisterFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font file: %w", err)
	}
	return l.Register(name, data)
}

// Lookup returns the data for name, or ErrUnknownFont.
func (l *Library) Lookup(name string) ([]byte, error) {
	ttf, ok := l.faces[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFont, name)
	}
	return ttf, nil
}

// Resolve is Lookup with fallback to the default font. The returned name is
// the one actually used.
func (l *Library) Resolve(name string) (string, []byte) {
	if ttf, err := l.Lookup(name); err == nil {
		return name, ttf
	}
	if !l.warned[name] {
		logger.Printf("font %q not registered, using %s", name, l.fallback)
		l.warned[name] = true
	}
	return l.fallback, l.faces[l.fallback]
}

// Names lists registered fonts in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.faces))
	for name := range l.faces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
