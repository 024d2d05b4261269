package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads raw catalogs keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file from disk. A nil parser is
// replaced by one matching the file extension.
type FileAdapter struct {
	parser Parser
	path   string
}

func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.path == "" {
		return nil, ErrEmptyPath
	}
	dir, name := filepath.Split(a.path)
	if dir == "" {
		dir = "."
	}
	out := make(map[string]map[string]any)
	if err := loadFile(ctx, os.DirFS(dir), name, a.parser, out); err != nil {
		return nil, err
	}
	return out, nil
}

// FSAdapter loads every supported file in dir of fsys, merging language
// sections in lexical file order. Works with embed.FS, os.DirFS and fstest.MapFS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter with a nil parser picks a parser per file extension.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter loads translation files from a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if dir == "" {
		return &FSAdapter{parser: parser}
	}
	return NewFSAdapter(parser, os.DirFS(dir), ".")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	out := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := a.parser
		if parser == nil {
			parser = NewParserForFile(entry.Name())
		}
		if parser == nil || !parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := loadFile(ctx, a.fsys, path.Join(a.dir, entry.Name()), parser, out); err != nil {
			return nil, err
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return out, nil
}

func loadFile(ctx context.Context, fsys fs.FS, name string, parser Parser, into map[string]map[string]any) error {
	if parser == nil {
		return ErrNilParser
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingCancelled, err)
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}

	sections, err := parser.Parse(ctx, content)
	if err != nil {
		return errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}

	for lang, tree := range sections {
		if into[lang] == nil {
			into[lang] = make(map[string]any, len(tree))
		}
		maps.Copy(into[lang], tree)
	}
	return nil
}
