package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pfeifer.dev/colprev/cereal"
	"pfeifer.dev/colprev/cli"
	"pfeifer.dev/colprev/params"
	ms "pfeifer.dev/colprev/settings"
	"pfeifer.dev/colprev/utils"
)

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(ms.SETTINGS_LOAD_TRIES)

	daemon, err := NewDaemon(cereal.MsgqBus{}, cereal.GetTime)
	utils.Check(err)
	defer func() {
		utils.Loge(daemon.Close())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	daemon.Run(ctx)
}
