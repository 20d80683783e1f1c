//go:build wireinject

package main

import (
	"io"

	"github.com/google/wire"
)

func BuildRunner(args Args, out io.Writer) (*Runner, error) {
	wire.Build(
		ProvideLogger,
		ProvideListerConfig,
		ProvideLister,
		ProvidePrinter,
		wire.Struct(new(Runner), "*"),
	)
	return nil, nil
}
