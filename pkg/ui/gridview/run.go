package gridview

import (
	"context"

	"github.com/odvcencio/kakeibo/pkg/ui/backend/tcell"
	"github.com/odvcencio/kakeibo/pkg/ui/grid"
	"github.com/odvcencio/kakeibo/pkg/ui/runtime"
)

// Run opens the editor over g in the real terminal and blocks until
// the user confirms or exits. It reports whether Confirm was pressed.
// The terminal is restored before Run returns.
func Run(ctx context.Context, g *grid.Grid) (bool, error) {
	be, err := tcell.New()
	if err != nil {
		return false, err
	}
	app := runtime.NewApp(runtime.AppConfig{
		Backend: be,
		Root:    New(g),
	})
	if err := app.Run(ctx); err != nil {
		return false, err
	}
	return g.Accepted(), nil
}
