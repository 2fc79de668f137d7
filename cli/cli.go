package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"pfeifer.dev/colprev/params"
)

func applyParamsDir(cmd *cli.Command) {
	if dir := cmd.String("params-dir"); dir != "" {
		params.SetParamsPath(dir)
	}
}

func newCommand(startDaemon *bool) *cli.Command {
	return &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "params-dir",
				Usage:   "Directory holding the persisted params",
				Value:   params.ParamsPath,
				Sources: cli.EnvVars(params.PARAMS_DIR_ENV),
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Watch and send commands to an active collision prevention instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					applyParamsDir(cmd)
					interactive()
					return nil
				},
			},
			settingsCommand(),
		},
		Name:  "colprev",
		Usage: "Start an instance of collision prevention",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyParamsDir(cmd)
			*startDaemon = true
			return nil
		},
	}
}

// Handle parses the command line. It returns only when the daemon should be
// started, every other command exits the process.
func Handle() {
	startDaemon := false
	cmd := newCommand(&startDaemon)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if !startDaemon {
		os.Exit(0)
	}
}
