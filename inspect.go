package cssmodlint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/cssmodlint/internal/csslint"
)

// ErrInvalidExtension is returned when a command gets a file of the wrong kind.
var ErrInvalidExtension = errors.New("invalid file extension")

// Imports maps each stylesheet a component imports, by resolved path, to the
// name it is bound to. A stylesheet imported twice keeps the lexically first
// binding. The component path is relative to config.Root or absolute.
func Imports(ctx context.Context, config LintConfig, component string) (map[string]string, error) {
	if !csslint.IsComponent(component) {
		return nil, fmt.Errorf("%s: %w (want %s or %s)", component, ErrInvalidExtension, csslint.TSXSuffix, csslint.JSXSuffix)
	}

	root := rootOf(config)
	tsconfig, err := csslint.LoadTSConfig(tsconfigPath(root, config.TSConfig))
	if err != nil {
		return nil, err
	}

	rel, err := relToRoot(root, component)
	if err != nil {
		return nil, err
	}
	files, err := readSourceFiles(root, []string{rel})
	if err != nil {
		return nil, err
	}

	frontend := csslint.NewTreeSitterFrontend(csslint.WithBracketAccess(config.BracketAccess))
	facts, err := frontend.Analyze(ctx, rel, files[0].Content)
	if err != nil {
		return nil, err
	}

	resolver := csslint.NewResolver(tsconfig.CompilerOptions.Paths)
	owner := csslint.CanonicalKey(rel)
	imports := make(map[string]string)
	for _, imp := range facts.Imports {
		key, err := resolver.Resolve(owner, imp.Path)
		if err != nil && config.Logger != nil {
			config.Logger.Warn("using unresolved import path", "file", owner, "error", err)
		}
		if prev, ok := imports[key]; !ok || imp.Binding < prev {
			imports[key] = imp.Binding
		}
	}
	return imports, nil
}

// Classes returns the classes a stylesheet defines, with the 0-based positions
// the extractor reports.
func Classes(stylesheet string) ([]csslint.DefinedClass, error) {
	content, err := readStylesheet(stylesheet)
	if err != nil {
		return nil, err
	}
	return csslint.ExtractDefinedClasses(string(content)), nil
}

// ClassBody returns the first rule in a stylesheet whose selector contains .className.
func ClassBody(stylesheet, className string) (string, bool, error) {
	content, err := readStylesheet(stylesheet)
	if err != nil {
		return "", false, err
	}
	body, ok := csslint.ClassBody(string(content), className)
	return body, ok, nil
}

// Usages lists every access of className on an import of stylesheet across the
// project. The stylesheet path is relative to config.Root or absolute.
func Usages(ctx context.Context, config LintConfig, stylesheet, className string) ([]csslint.UsedClass, error) {
	if !csslint.IsStylesheet(stylesheet) {
		return nil, fmt.Errorf("%s: %w (want %s)", stylesheet, ErrInvalidExtension, csslint.StylesheetSuffix)
	}

	root := rootOf(config)
	rel, err := relToRoot(root, stylesheet)
	if err != nil {
		return nil, err
	}

	frontend := csslint.NewTreeSitterFrontend(csslint.WithBracketAccess(config.BracketAccess))
	proj, err := loadProject(ctx, config, frontend, csslint.IsComponent)
	if err != nil {
		return nil, err
	}

	var usages []csslint.UsedClass
	for _, u := range proj.tables.Used[csslint.CanonicalKey(rel)].Sorted() {
		if u.Name == className {
			usages = append(usages, u)
		}
	}
	return usages, nil
}

func readStylesheet(path string) ([]byte, error) {
	if !csslint.IsStylesheet(path) {
		return nil, fmt.Errorf("%s: %w (want %s)", path, ErrInvalidExtension, csslint.StylesheetSuffix)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", csslint.ErrIO, err)
	}
	return content, nil
}

func rootOf(config LintConfig) string {
	if config.Root == "" {
		return "."
	}
	return config.Root
}

// relToRoot turns an absolute path into a root-relative, forward-slash one.
// Relative paths are taken as already relative to root.
func relToRoot(root, p string) (string, error) {
	if !filepath.IsAbs(p) {
		return csslint.CanonicalKey(p), nil
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, p)
	if err != nil {
		return "", fmt.Errorf("%s is not under %s: %w", p, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not under %s", p, root)
	}
	return csslint.CanonicalKey(rel), nil
}
