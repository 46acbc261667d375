package runner

import (
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
)

// verifyPage checks that migrated output is still parseable JSX by running
// it through esbuild. Catches printer regressions before anything is
// written to disk.
func verifyPage(path, src string) error {
	result := api.Transform(src, api.TransformOptions{
		Loader:     api.LoaderJSX,
		Sourcefile: path,
	})
	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		return fmt.Errorf("verify %s: %s (line %d)", path, msg.Text, location(msg))
	}
	return nil
}

func location(msg api.Message) int {
	if msg.Location == nil {
		return 0
	}
	return msg.Location.Line
}
