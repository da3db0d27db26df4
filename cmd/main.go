package main

import (
	"log"

	"tomatina/internal/audio"
	"tomatina/internal/core/engine"
	"tomatina/internal/core/model"
	"tomatina/internal/notify"
	"tomatina/internal/platform"
	"tomatina/internal/ui/flash"
	"tomatina/internal/ui/timerwin"
	"tomatina/resources"

	"fyne.io/fyne/v2/app"
)

const appName = "Tomatina"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.tomatina.app")

	timer := engine.New(engine.Options{})
	timer.SetNotifier(notify.New(flash.New(fyneApp), audio.New(resources.Sound)))

	mainWindow := timerwin.New(fyneApp, model.Default(), timerwin.Callbacks{
		OnSetup:     timer.Configure,
		OnToggleRun: timer.ToggleRun,
		OnBackward:  timer.SkipBackward,
		OnReset:     timer.ResetCurrent,
		OnForward:   timer.SkipForward,
	})
	timer.SetDisplay(mainWindow)

	mainWindow.ShowAndRun()
	timer.Stop()
}
