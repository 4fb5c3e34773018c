package main

import "oficys/internal/store"

// Type aliases to the internal store package
type GameRecord = store.GameRecord
