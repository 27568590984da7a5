package commands

import (
	"fmt"
	"io"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/display"
)

// RunList prints the configured plans and groups.
func RunList(cfg *config.Config, out io.Writer) error {
	fmt.Fprint(out, display.RenderList(cfg))
	return nil
}
