package csslint

import (
	"context"
	"log/slog"
)

// SourceFile is a listed file with its content already read.
type SourceFile struct {
	Path    string // root-relative, forward slashes
	Content []byte
}

// Tables is the result of the aggregation pass.
type Tables struct {
	Defined     DefinedTable
	Used        UsedTable
	Warnings    []error // path resolution problems, non-fatal
	Stylesheets int
	Components  int
}

// TableBuilder aggregates definitions and usages across a file set.
type TableBuilder struct {
	resolver *Resolver
	frontend Frontend
	logger   *slog.Logger
	tables   Tables
}

// NewTableBuilder creates a builder. A nil logger discards output.
func NewTableBuilder(resolver *Resolver, frontend Frontend, logger *slog.Logger) *TableBuilder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TableBuilder{
		resolver: resolver,
		frontend: frontend,
		logger:   logger,
		tables: Tables{
			Defined: make(DefinedTable),
			Used:    make(UsedTable),
		},
	}
}

// Add dispatches a file by naming convention. Files that are neither
// stylesheets nor components are ignored.
func (b *TableBuilder) Add(ctx context.Context, f SourceFile) error {
	switch {
	case IsStylesheet(f.Path):
		b.AddStylesheet(f.Path, f.Content)
	case IsComponent(f.Path):
		return b.AddComponent(ctx, f.Path, f.Content)
	}
	return nil
}

// AddStylesheet records the classes defined by one stylesheet under its own key.
func (b *TableBuilder) AddStylesheet(path string, content []byte) {
	key := CanonicalKey(path)
	classes := ExtractDefinedClasses(string(content))
	b.logger.Debug("extracted stylesheet", "file", key, "classes", len(classes))

	// An empty stylesheet still gets a key so its importers can be joined.
	b.tables.Defined.Add(key, classes...)
	b.tables.Stylesheets++
}

// AddComponent runs the front-end on one component and records its usages under
// the stylesheet keys they resolve to.
func (b *TableBuilder) AddComponent(ctx context.Context, path string, content []byte) error {
	facts, err := b.frontend.Analyze(ctx, path, content)
	if err != nil {
		return err
	}
	if facts == nil {
		facts = &ComponentFacts{}
	}

	usages, warnings := ExtractUsages(path, facts, b.resolver)
	for _, w := range warnings {
		b.logger.Warn("using unresolved import path", "file", path, "error", w)
	}
	b.tables.Warnings = append(b.tables.Warnings, warnings...)
	b.tables.Used.Merge(usages)
	b.tables.Components++

	b.logger.Debug("extracted component", "file", path,
		"imports", len(facts.Imports), "stylesheets", len(usages))
	return nil
}

// Tables returns the aggregated tables. The builder must not be used afterwards.
func (b *TableBuilder) Tables() *Tables {
	return &b.tables
}

// BuildTables runs the aggregation pass over every file.
func BuildTables(ctx context.Context, files []SourceFile, resolver *Resolver, frontend Frontend, logger *slog.Logger) (*Tables, error) {
	builder := NewTableBuilder(resolver, frontend, logger)
	for _, f := range files {
		if err := builder.Add(ctx, f); err != nil {
			return nil, err
		}
	}
	return builder.Tables(), nil
}
