package main

import (
	"context"
	"os"

	"github.com/yeremiapane/order-api/cli"
	"github.com/yeremiapane/order-api/utils"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		utils.ErrorLogger.Error(err)
		os.Exit(1)
	}
}
