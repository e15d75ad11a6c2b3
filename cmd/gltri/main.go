// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gltri draws two triangles with OpenGL: one whose green
// pulses with time through a uniform, and one colored by its vertices.
// Press Escape or close the window to quit. Settings can be given in
// a TOML file named by the GLTRI_CONFIG environment variable.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/gltri/base/errors"
	"cogentcore.org/gltri/config"
	"cogentcore.org/gltri/gpu/glgpu"
	"cogentcore.org/gltri/logx"
	"cogentcore.org/gltri/render"
	"cogentcore.org/gltri/system/glfwwin"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logx.SetDefault()
	cfg, err := config.FromEnv()
	if errors.Log(err) != nil {
		return err
	}
	if err := errors.Log(logx.SetLevel(cfg.LogLevel)); err != nil {
		return err
	}

	win, err := glfwwin.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync)
	if errors.Log(err) != nil {
		return err
	}
	defer win.Close()

	if err := errors.Log(glgpu.Init()); err != nil {
		return err
	}
	slog.Info("gltri", "OpenGL", glgpu.Version())

	drv := &glgpu.Driver{}
	drv.Wireframe(cfg.Wireframe)
	sc, err := render.Setup(drv)
	if errors.Log(err) != nil {
		return err
	}
	render.NewLoop(win, drv, sc, render.NewFrameClock()).Run()
	return nil
}
