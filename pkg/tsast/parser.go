package tsast

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// DefaultMaxFileSize is the largest source file the parser accepts
const DefaultMaxFileSize = 4 * 1024 * 1024

var (
	// ErrUnsupportedFile is returned for file extensions the parser has no grammar for
	ErrUnsupportedFile = errors.New("unsupported source file")
	// ErrFileTooLarge is returned when the source exceeds the configured limit
	ErrFileTooLarge = errors.New("source file too large")
	// ErrInvalidContent is returned when the source is not valid UTF-8
	ErrInvalidContent = errors.New("source is not valid UTF-8")
)

// Extensions lists the file extensions the parser understands
var Extensions = []string{".ts", ".mts", ".cts", ".tsx", ".js", ".mjs", ".jsx"}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithMaxFileSize sets the maximum accepted file size in bytes
func WithMaxFileSize(bytes int) ParserOption {
	return func(p *Parser) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

// Parser turns source files into syntax trees.
// A Parser is safe for concurrent use; every call creates its own
// tree-sitter parser.
type Parser struct {
	maxFileSize int
}

// NewParser creates a new Parser
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Supports reports whether the parser has a grammar for the given path
func Supports(path string) bool {
	return languageFor(path) != nil
}

func languageFor(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx", ".jsx":
		return tsx.GetLanguage()
	case ".ts", ".mts", ".cts", ".js", ".mjs":
		return typescript.GetLanguage()
	default:
		return nil
	}
}

// ParseFile parses src, using path to pick the grammar.
// Syntax errors do not fail the parse; the partial tree is returned with
// HasErrors set.
func (p *Parser) ParseFile(ctx context.Context, path string, src []byte) (*SourceFile, error) {
	lang := languageFor(path)
	if lang == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	if len(src) > p.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, path, len(src), p.maxFileSize)
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContent, path)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	file := &SourceFile{Path: path}
	if root == nil {
		file.HasErrors = true
		return file, nil
	}
	file.HasErrors = root.HasError()

	l := &lowerer{src: src, file: file}
	l.program(root)

	return file, nil
}

// ParseString is a convenience wrapper for tests and tooling
func (p *Parser) ParseString(path, src string) (*SourceFile, error) {
	return p.ParseFile(context.Background(), path, []byte(src))
}
