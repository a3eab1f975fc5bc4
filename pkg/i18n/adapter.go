package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements TranslationAdapter.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter reads every file in dir the parser understands and merges
// the results. It works with embed.FS as well as os.DirFS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns an adapter reading translation files from dir in fsys.
// An empty dir means the root of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements TranslationAdapter. Files are merged in directory order,
// later files overriding earlier ones key by key at the top level.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil || a.fsys == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	result := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}

		parsed, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}
		for lang, messages := range parsed {
			if result[lang] == nil {
				result[lang] = make(map[string]any, len(messages))
			}
			maps.Copy(result[lang], messages)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return result, nil
}
