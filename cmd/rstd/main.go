// Command rstd runs rst's HTML preview server.
package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rstkit/rst/internal/config"
	"github.com/rstkit/rst/internal/server"
	"github.com/rstkit/rst/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "rstd",
	Short: "rstd serves a preview API for rendering and diffing rST documents",
	RunE:  serve,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	st, err := store.Open(cfg.DBFile)
	if err != nil {
		return err
	}
	defer st.Close()

	app := &server.App{Store: st}

	log.Printf("rstd listening on %s (db %s)", cfg.Addr, cfg.DBFile)
	return http.ListenAndServe(cfg.Addr, app.NewRouter())
}
