package csslint

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// CheckSyntax validates a component with esbuild's TSX/JSX parser and returns
// the first syntax error as *ParseError.
func CheckSyntax(file string, src []byte) error {
	loader := api.LoaderTSX
	if strings.HasSuffix(file, JSXSuffix) {
		loader = api.LoaderJSX
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:     loader,
		Sourcefile: file,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}

	msg := result.Errors[0]
	pe := &ParseError{File: file, Msg: msg.Text}
	if msg.Location != nil {
		pe.Line = msg.Location.Line
		pe.Column = msg.Location.Column
	}
	return pe
}
