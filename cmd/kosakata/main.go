package main

import (
	"context"

	"github.com/faizmokh/kosakata/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}

