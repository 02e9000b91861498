package main

import (
	"log"

	"github.com/sobadon/carlot/cmd/carlot/rocdate"
	"github.com/sobadon/carlot/cmd/carlot/seed"
	"github.com/sobadon/carlot/cmd/carlot/serve"
	"github.com/sobadon/carlot/cmd/carlot/version"
	"github.com/spf13/cobra"
)

func main() {
	execute()
}

func execute() {
	var rootCmd = &cobra.Command{
		Use:   "carlot",
		Short: "used-car dealership back office",
	}

	rootCmd.AddCommand(serve.Command())
	rootCmd.AddCommand(seed.Command())
	rootCmd.AddCommand(rocdate.Command())
	rootCmd.AddCommand(version.Command())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
