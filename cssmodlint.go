// Package cssmodlint finds mismatches between the classes CSS modules define
// and the classes TSX/JSX components use.
//
// A class defined in Button.module.css that no importer of that stylesheet
// ever accesses is reported as unused. An access such as styles.btnPrimary,
// where styles is a default import of a stylesheet that does not define
// btnPrimary, is reported as undefined.
//
// # Linting
//
//	config := cssmodlint.LintConfig{
//		Root:          "web",
//		BracketAccess: true,
//	}
//	result, err := cssmodlint.Lint(ctx, config)
//	if err != nil {
//		return err
//	}
//	format := cssmodlint.DetermineOutputFormat("text", false)
//	err = cssmodlint.WriteOutput(os.Stdout, result, format, config)
//
// Import paths are resolved against the importing file and the
// compilerOptions.paths aliases of tsconfig.json, which must exist at the root.
//
// # Suppressing
//
// A comment directly above a selector line hides its classes:
//
//	/* css-lint-disable-rule unused-class */
//	.set-from-global-css { ... }
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssmodlint/cmd/cssmodlint@latest
package cssmodlint
