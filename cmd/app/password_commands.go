package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sisyphus/cmd/app/commands"
	"github.com/allisson/sisyphus/internal/app"
	"github.com/allisson/sisyphus/internal/config"
)

var errFullNameRequired = errors.New("full name is required: pass --name or set MPW_FULL_NAME")

func nameFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Full name of the user (defaults to MPW_FULL_NAME)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getPasswordCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "generate",
			Usage:     "Derive the password for a site",
			ArgsUsage: "<site> [counter] [type]",
			Flags: []cli.Flag{
				nameFlag(),
				&cli.StringFlag{
					Name:    "counter",
					Aliases: []string{"c"},
					Usage:   "Site counter, bumped to rotate a password (defaults to MPW_DEFAULT_COUNTER)",
				},
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Usage:   "Password type: max, long, medium, short, basic or pin (defaults to MPW_DEFAULT_TYPE)",
				},
				formatFlag(),
				&cli.BoolFlag{
					Name:  "key-id",
					Usage: "Also print the master key fingerprint",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				identity := firstNonEmpty(cmd.String("name"), cfg.FullName)
				if identity == "" {
					return errFullNameRequired
				}
				if cmd.Args().Len() < 1 {
					return errors.New("site name is required")
				}

				counter, err := commands.ParseCounter(
					firstNonEmpty(cmd.Args().Get(1), cmd.String("counter")),
					cfg.DefaultCounter,
				)
				if err != nil {
					return err
				}
				passwordType, err := commands.ParsePasswordType(
					firstNonEmpty(cmd.Args().Get(2), cmd.String("type")),
					cfg.DefaultPasswordType,
				)
				if err != nil {
					return err
				}

				sitePasswordUseCase, err := container.SitePasswordUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					sitePasswordUseCase,
					container.Logger(),
					identity,
					cmd.Args().Get(0),
					counter,
					passwordType,
					cmd.String("format"),
					cmd.Bool("key-id"),
					cfg.DerivationTimeout,
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "batch",
			Usage: "Derive passwords for site requests read from stdin, one site[,counter[,type]] per line",
			Flags: []cli.Flag{
				nameFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				identity := firstNonEmpty(cmd.String("name"), cfg.FullName)
				if identity == "" {
					return errFullNameRequired
				}

				sitePasswordUseCase, err := container.SitePasswordUseCase()
				if err != nil {
					return err
				}

				return commands.RunBatch(
					ctx,
					sitePasswordUseCase,
					container.Logger(),
					identity,
					cfg.DefaultCounter,
					cfg.DefaultPasswordType,
					cmd.String("format"),
					cfg.DerivationTimeout,
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "types",
			Usage: "List password types and their templates",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunListTypes(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
	}
}
