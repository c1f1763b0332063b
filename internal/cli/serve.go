package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackshelf/internal/server"
)

// serveCommand creates the serve command, which runs the HTTP render service
// until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
		maxBody   int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Endpoints:
  POST /render?format=dae|svg|json   render a posted description
  POST /layout                       return the layout and boards as JSON
  GET  /healthz                      liveness check

Rendered artifacts are cached in the local cache directory, or in redis
when --redis-addr is given so several instances can share them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newServerRunner(ctx, redisAddr, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := server.New(server.Config{
				Addr:         addr,
				Runner:       runner,
				Logger:       c.Logger,
				MaxBodyBytes: maxBody,
			})
			printInfo("Listening on %s", StyleLink.Render("http://"+displayAddr(addr)))
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis address (host:port) for a shared cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}

// displayAddr turns a listen address into something a browser can open.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
