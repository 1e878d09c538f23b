package cli

import (
	"github.com/adrianliechti/go-cli"
	urfave "github.com/urfave/cli/v3"
)

type Command = cli.Command

type Flag = cli.Flag
type StringFlag = cli.StringFlag

// not aliased by go-cli
type DurationFlag = urfave.DurationFlag

// Fatal prints v to stderr and exits with status 1.
func Fatal(v ...any) {
	cli.Fatal(v...)
}
