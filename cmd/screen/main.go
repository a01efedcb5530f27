package main

import (
	"context"
	"os"

	"alfredoptarigan/hr-helper/internal/cli"
	"alfredoptarigan/hr-helper/internal/config"
)

func main() {
	if err := cli.Execute(context.Background(), config.Load()); err != nil {
		os.Exit(1)
	}
}
