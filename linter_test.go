package cssmodlint

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yacobolo/cssmodlint/internal/csslint"
	"github.com/yacobolo/cssmodlint/internal/testutil"
)

const appTSX = `import styles from "./App.module.css";
import shared from "@styles/shared.module.css";

export const App = () => (
  <div className={styles.root}>
    <p className={shared.card}>{styles.missing}</p>
  </div>
);
`

// sampleProject has one unused class per stylesheet and one undefined access.
func sampleProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"tsconfig.json": `{
  // aliases are root-relative
  "compilerOptions": {"paths": {"@styles/*": ["src/styles/*"]}},
  "exclude": ["dist"],
}`,
		"src/styles/shared.module.css": ".card {}\n.unusedShared {}\n",
		"src/App.module.css":           "/* css-lint-disable-rule unused-class */\n.global {}\n.root {}\n.orphan {}\n",
		"src/App.tsx":                  appTSX,
		"src/README.md":                "# not scanned",
		"dist/Bad.tsx":                 "this is not { valid",
		".cache/stale.module.css":      ".stale {}\n",
	})
	return dir
}

func TestLint_EndToEnd(t *testing.T) {
	dir := sampleProject(t)

	result, err := Lint(context.Background(), LintConfig{
		Root:          dir,
		BracketAccess: true,
		Logger:        testutil.NewTestLogger(t),
	})
	require.NoError(t, err)

	assert.Equal(t, []csslint.Diagnostic{
		{Kind: csslint.KindUnused, File: "src/App.module.css", Line: 4, Column: 1, Name: "orphan", Source: ".orphan {}"},
		{Kind: csslint.KindUnused, File: "src/styles/shared.module.css", Line: 2, Column: 1, Name: "unusedShared", Source: ".unusedShared {}"},
		{Kind: csslint.KindUndefined, File: "src/App.tsx", Line: 6, Column: 39, Name: "missing", Source: "    <p className={shared.card}>{styles.missing}</p>"},
	}, result.Diagnostics)

	assert.Equal(t, 2, result.UnusedCount)
	assert.Equal(t, 1, result.UndefinedCount)
	assert.Equal(t, 3, result.FilesScanned)
	assert.Equal(t, 2, result.Stylesheets)
	assert.Equal(t, 1, result.Components)
	assert.Equal(t, 2, result.Stats.DirsPruned)
	assert.Empty(t, result.Warnings)
	assert.True(t, result.HasDiagnostics())

	require.Len(t, result.Issues, 3)
	assert.Equal(t, IssuePos{Filename: "src/App.tsx", Line: 6, Column: 39}, result.Issues[2].Pos)
	assert.Equal(t, 7, result.Issues[2].Length)
}

func TestLint_CleanProject(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"tsconfig.json":        `{}`,
		"Card.module.css":      ".card {}\n.card-title {}\n",
		"Card.jsx":             "import s from './Card.module.css';\nexport const Card = () => <div className={s.card}><h2 className={s[\"card-title\"]} /></div>;\n",
		"Unrelated.module.css": "",
	})

	result, err := Lint(context.Background(), LintConfig{Root: dir, BracketAccess: true})
	require.NoError(t, err)

	assert.Empty(t, result.Diagnostics)
	assert.False(t, result.HasDiagnostics())
}

func TestLint_BracketAccessDisabled(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"tsconfig.json":   `{}`,
		"Card.module.css": ".card-title {}\n",
		"Card.tsx":        "import s from './Card.module.css';\nexport const t = s[\"card-title\"];\n",
	})

	result, err := Lint(context.Background(), LintConfig{Root: dir, BracketAccess: false})
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "card-title", result.Diagnostics[0].Name)
	assert.Equal(t, csslint.KindUnused, result.Diagnostics[0].Kind)
}

func TestLint_FatalErrors(t *testing.T) {
	t.Run("missing tsconfig", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteTree(t, dir, map[string]string{"a.module.css": ".a {}"})

		_, err := Lint(context.Background(), LintConfig{Root: dir})

		var ce *csslint.ConfigError
		require.True(t, errors.As(err, &ce))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("unparsable component", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteTree(t, dir, map[string]string{
			"tsconfig.json": `{}`,
			"src/Bad.tsx":   "const x = ;\n",
		})

		_, err := Lint(context.Background(), LintConfig{Root: dir})

		var pe *csslint.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "src/Bad.tsx", pe.File)
	})

	t.Run("missing root", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteTree(t, dir, map[string]string{"tsconfig.json": `{}`})

		_, err := Lint(context.Background(), LintConfig{
			Root:     dir + "/nope",
			TSConfig: dir + "/tsconfig.json",
		})
		require.Error(t, err)
	})
}

func TestLint_PathEscapeIsAWarning(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"tsconfig.json": `{}`,
		"App.tsx":       "import s from '../outside.module.css';\nexport const a = s.x;\n",
	})

	result, err := Lint(context.Background(), LintConfig{Root: dir})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "escapes the project root")

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, csslint.Diagnostic{
		Kind: csslint.KindUndefined, File: "App.tsx", Line: 2, Column: 19, Name: "x",
		Source: "export const a = s.x;",
	}, result.Diagnostics[0])
}

func TestLint_Limits(t *testing.T) {
	dir := sampleProject(t)

	result, err := Lint(context.Background(), LintConfig{
		Root:               dir,
		MaxIssuesPerLinter: 1,
	})
	require.NoError(t, err)

	assert.Len(t, result.Diagnostics, 1)
	assert.Len(t, result.Issues, 1)
	assert.Equal(t, 2, result.TruncatedCount)
	assert.True(t, result.HasDiagnostics())
}

func TestLintWith_MockFrontend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"tsconfig.json":      `{"compilerOptions": {"paths": {"~/*": ["src/*"]}}}`,
		"src/a.module.css":   ".one {}\n.two {}\n",
		"src/pages/Page.tsx": "not parsed by the mock",
	})

	frontend := csslint.NewMockFrontend(ctrl)
	frontend.EXPECT().
		Analyze(gomock.Any(), "src/pages/Page.tsx", []byte("not parsed by the mock")).
		Return(&csslint.ComponentFacts{
			Imports:  []csslint.StyleImport{{Path: "~/a.module.css", Binding: "css"}},
			Accesses: []csslint.MemberAccess{{Binding: "css", Property: "one", Line: 1, Column: 3}},
		}, nil)

	result, err := lintWith(context.Background(), LintConfig{Root: dir}, frontend)
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "two", result.Diagnostics[0].Name)
}

func TestDeduplicateSameIssues(t *testing.T) {
	diags := []csslint.Diagnostic{
		{Kind: csslint.KindUnused, File: "a.module.css", Line: 1, Name: "x"},
		{Kind: csslint.KindUnused, File: "b.module.css", Line: 1, Name: "x"},
		{Kind: csslint.KindUnused, File: "c.module.css", Line: 1, Name: "x"},
		{Kind: csslint.KindUnused, File: "c.module.css", Line: 2, Name: "y"},
	}

	got, truncated := limitIssues(diags, LintConfig{MaxSameIssues: 2})

	assert.Len(t, got, 3)
	assert.Equal(t, 1, truncated)
}
