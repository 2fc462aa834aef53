package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudokugame/internal/actionlog"
	httpadapter "svw.info/sudokugame/internal/adapters/http"
	"svw.info/sudokugame/internal/generator"
	"svw.info/sudokugame/internal/infrastructure/storage"
	"svw.info/sudokugame/internal/solver"
	"svw.info/sudokugame/internal/usecase"
	"svw.info/sudokugame/internal/validator"
)

var addr string

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Run:   runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func newService() *usecase.Service {
	v := validator.New()
	return usecase.NewService(
		v,
		generator.New(),
		solver.New(v),
		storage.NewFS(dataDir),
		actionlog.NewFile(dataDir),
	)
}

func runServe(cmd *cobra.Command, args []string) {
	e := gin.Default()
	httpadapter.New(newService()).Register(e)

	log.Info().Str("addr", addr).Str("data", dataDir).Msg("listening")
	if err := e.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}
