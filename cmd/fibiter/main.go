package main

import (
	"context"
	"os"

	"github.com/agbru/fibiter/internal/app"
	apperrors "github.com/agbru/fibiter/internal/errors"
)

func main() {
	application, err := app.New(os.Stderr)
	if err != nil {
		os.Exit(apperrors.ExitCodeFor(err))
	}

	ctx := context.Background()
	exitCode := application.Run(ctx, os.Stdout)
	_ = application.Shutdown(ctx)
	os.Exit(exitCode)
}
