// Command seedtrail opens a window and renders an interactive mouse
// trail: drag to paint, release and drag again to paint with the color
// seeded by the new press position.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/seedtrail/seedtrail"
	"github.com/seedtrail/seedtrail/internal/gpu"
	"github.com/seedtrail/seedtrail/internal/queue"
	"github.com/seedtrail/seedtrail/internal/window"
)

func init() {
	// GLFW event polling and surface presentation must stay on the
	// main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		title   = flag.String("title", "seedtrail", "window title")
		vsync   = flag.Bool("vsync", true, "present with vsync")
		verbose = flag.Bool("v", false, "verbose logging, including per-event pointer traces")
	)
	flag.Parse()

	// Pointer traces are emitted at Warn, so the quiet default sits
	// above them.
	level := slog.LevelError
	if *verbose {
		level = slog.LevelInfo
	}
	seedtrail.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if err := run(*title, *vsync); err != nil {
		fmt.Fprintln(os.Stderr, "seedtrail:", err)
		os.Exit(1)
	}
}

func run(title string, vsync bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	win, err := window.New(title)
	if err != nil {
		return err
	}
	defer win.Destroy()

	gctx, err := gpu.New(gpu.Config{
		Surface: win.SurfaceDescriptor(),
		VSync:   vsync,
	})
	if err != nil {
		return err
	}
	defer gctx.Close()

	q := queue.New[seedtrail.Event]()
	defer q.Close()

	sub := win.Subscribe(q.Push)
	defer sub.Close()

	// The tracker lives on the event goroutine; nothing else touches
	// it. Uniform writes go through the device queue, which is safe to
	// share with the render loop.
	go func() {
		tracker := seedtrail.NewTracker()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-q.C():
				if !ok {
					return
				}
				tracker.Apply(ev)
				if err := gctx.WriteUniforms(tracker.Uniforms()); err != nil {
					if !errors.Is(err, gpu.ErrContextClosed) {
						seedtrail.Logger().Error("uniform write failed", "err", err)
					}
					return
				}
			}
		}
	}()

	log := seedtrail.Logger()
	err = win.Run(ctx, func() error {
		if err := gctx.RenderFrame(); err != nil {
			if errors.Is(err, gpu.ErrSurfaceAcquire) {
				// Transient swapchain loss: reconfigure and skip the
				// frame rather than tearing the whole app down.
				log.Warn("frame skipped", "err", err)
				gctx.Reconfigure()
				return nil
			}
			return err
		}
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
