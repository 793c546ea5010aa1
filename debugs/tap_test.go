package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/wreath/logs"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
	).Call(func(
		tap Tap,
	) {
		ctx := logs.WithStep(t.Context(), logs.Step{
			Index: 0,
			Code:  'F',
		})
		tap(ctx, "test", map[string]any{
			"word": "000/000 > 101/000 < 000/000",
			"runs": [][2]int{{2, 3}},
		})
	})
}
