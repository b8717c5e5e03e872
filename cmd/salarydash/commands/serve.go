package commands

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"salarydash/internal/api"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := echo.New()
			e.Use(middleware.CORS())
			e.Use(middleware.Recover())
			e.Use(middleware.Logger())

			// Routes go live immediately; they answer 503 until the
			// dataset finishes loading in the background.
			h := api.NewHandler(nil, cfg.Schema())
			h.RegisterRoutes(e)

			go func() {
				log.Printf("loading dataset from %s source...", cfg.DataSource)
				t0 := time.Now()
				table, err := loadTable()
				if err != nil {
					log.Fatalf("dataset load failed: %v", err)
				}
				h.SetData(table)
				log.Printf("dataset ready: %d records in %v", table.Len(), time.Since(t0))
			}()

			log.Printf("server ready on port %s (data loading in background...)", cfg.Port)
			return e.Start(":" + cfg.Port)
		},
	}
}
