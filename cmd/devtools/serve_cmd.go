// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	apiserver "github.com/wrgl/devtools/pkg/api/server"
	"github.com/wrgl/devtools/pkg/conf"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve every tool over HTTP",
		Long:  "Serve every tool as a JSON endpoint. GET / lists the endpoints. Flags override the server section of config.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "listen on port 3000",
				Line:    "devtools serve --port 3000",
			},
		}),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			c, err := utils.OpenConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyServerFlags(cmd, c); err != nil {
				return err
			}
			srv := apiserver.NewHTTPServer(c, logger)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				if err := srv.Close(); err != nil {
					logger.Error(err, "error shutting down server")
				}
			}()
			addr := fmt.Sprintf(":%d", c.ServerPort())
			cmd.Printf("Listening on %s\n", addr)
			return srv.Start(addr)
		},
	}
	cmd.Flags().IntP("port", "p", 0, fmt.Sprintf("port to listen on (defaults to server.port config or %d)", conf.DefaultPort))
	cmd.Flags().Duration("read-timeout", 0, "maximum duration for reading an entire request (defaults to server.readTimeout config)")
	cmd.Flags().Duration("write-timeout", 0, "maximum duration before timing out writes of a response (defaults to server.writeTimeout config)")
	cmd.Flags().Bool("no-gzip", false, "don't compress responses")
	return cmd
}

func applyServerFlags(cmd *cobra.Command, c *conf.Config) error {
	if c.Server == nil {
		c.Server = &conf.Server{}
	}
	if cmd.Flags().Changed("port") {
		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			return err
		}
		c.Server.Port = port
	}
	for _, v := range []struct {
		name string
		dst  **conf.Duration
	}{
		{"read-timeout", &c.Server.ReadTimeout},
		{"write-timeout", &c.Server.WriteTimeout},
	} {
		if !cmd.Flags().Changed(v.name) {
			continue
		}
		d, err := cmd.Flags().GetDuration(v.name)
		if err != nil {
			return err
		}
		cd := conf.Duration(d)
		*v.dst = &cd
	}
	noGzip, err := cmd.Flags().GetBool("no-gzip")
	if err != nil {
		return err
	}
	if noGzip {
		gzip := false
		c.Server.Gzip = &gzip
	}
	return nil
}
