package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"go-freelist/config"
	"go-freelist/pkg/allocator/buddy"
	"go-freelist/pkg/allocator/slab"
	"go-freelist/pkg/arena"
	"go-freelist/pkg/workload"
	"go-freelist/util/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	flag.Parse()

	configs, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if err := logger.SetLevel(configs.Log.Level); err != nil {
		fatal(err)
	}

	if err := run(configs); err != nil {
		fatal(err)
	}
}

func run(configs *config.AppConfig) error {
	ar, err := arena.Open(&arena.Options{
		Size: configs.Arena.Size,
		Lock: configs.Arena.Lock,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open arena")
	}

	defer func() {
		if err := ar.Close(); err != nil {
			logger.L.WithError(err).Error("error on closing arena")
		}
	}()

	slabRegion, err := ar.Sub(0, uintptr(configs.Slab.RegionSize))
	if err != nil {
		return errors.Wrap(err, "failed to carve slab region")
	}
	buddyRegion, err := ar.Sub(slabRegion.Size(), uintptr(configs.Buddy.RegionSize()))
	if err != nil {
		return errors.Wrap(err, "failed to carve buddy region")
	}

	slabs, err := slab.New(slabRegion, &slab.Options{
		BlockSize: uintptr(configs.Slab.BlockSize),
	})
	if err != nil {
		return errors.Wrap(err, "failed to init slab allocator")
	}
	buddies, err := buddy.New(buddyRegion, &buddy.Options{
		MinBlockSize: uintptr(configs.Buddy.MinBlockSize),
		MaxOrder:     configs.Buddy.MaxOrder,
	})
	if err != nil {
		return errors.Wrap(err, "failed to init buddy allocator")
	}

	opts := &workload.Options{
		Seed:       configs.Workload.Seed,
		Operations: configs.Workload.Operations,
		MaxSize:    uintptr(configs.Workload.MaxSize),
	}

	slabOpts := *opts
	slabOpts.MaxSize = slabs.BlockSize()
	if _, err := workload.Run("slab", workload.Fixed(slabs), &slabOpts); err != nil {
		return err
	}
	if _, err := workload.Run("buddy", buddies, opts); err != nil {
		return err
	}

	logger.L.WithField("slab_available", slabs.Available()).
		WithField("buddy_free_bytes", buddies.FreeBytes()).
		Info("done")
	return nil
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}
