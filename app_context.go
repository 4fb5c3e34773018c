package main

import (
	"time"

	"oficys/internal/store"
)

// AppContext holds the application dependencies. It is built once in main
// and passed into every command; nothing here is a package-level singleton.
type AppContext struct {
	Config    *Config
	Store     *store.Store
	Location  *time.Location
	StartTime time.Time
}

// InitApp initializes the application context.
func InitApp(cfg *Config) (*AppContext, error) {
	st, err := store.New(cfg.StoreFile)
	if err != nil {
		return nil, err
	}
	return &AppContext{
		Config:    cfg,
		Store:     st,
		Location:  mainLocation(),
		StartTime: time.Now(),
	}, nil
}
