// Package store implements the single-file JSON persistence layer: saved
// games with ratings and per-user command counters. The whole document is
// read and rewritten under one mutex on every call, which is plenty for chat
// command cadence.
package store

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// GameRecord is one saved game for one user. Names are unique per user,
// case-insensitively; repeated saves overwrite the rating only.
type GameRecord struct {
	UserID    int64  `json:"user_id"`
	GameName  string `json:"game_name"`
	Rating    int    `json:"rating"`
	CreatedAt int64  `json:"created_at"`
}

// document is the on-disk shape. Both keys are always present.
type document struct {
	Games        []GameRecord              `json:"games"`
	CommandStats map[string]map[string]int `json:"command_stats"`
}

func emptyDocument() document {
	return document{
		Games:        []GameRecord{},
		CommandStats: map[string]map[string]int{},
	}
}

// Store owns the backing file exclusively. No other code reads or writes it.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New creates the store, the parent directory and, if missing, the file
// itself with an empty document.
func New(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(emptyDocument()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

// read loads the document. A corrupt file is moved aside to <path>.corrupt
// and replaced by the empty document rather than dropped on the floor.
func (s *Store) read() (document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyDocument(), nil
		}
		return document{}, err
	}
	var doc document
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			backup := s.path + ".corrupt"
			if mvErr := os.Rename(s.path, backup); mvErr != nil {
				slog.Error("Store file is corrupt and could not be moved aside", "path", s.path, "err", mvErr)
			} else {
				slog.Warn("Store file is corrupt, starting empty", "path", s.path, "backup", backup, "err", err)
			}
			return emptyDocument(), nil
		}
	}
	if doc.Games == nil {
		doc.Games = []GameRecord{}
	}
	if doc.CommandStats == nil {
		doc.CommandStats = map[string]map[string]int{}
	}
	return doc, nil
}

func (s *Store) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// AddOrUpdateGame saves a game for the user, overwriting the rating when a
// record with the same name (case-insensitive) already exists.
func (s *Store) AddOrUpdateGame(userID int64, gameName string, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	for i := range doc.Games {
		g := &doc.Games[i]
		if g.UserID == userID && strings.EqualFold(g.GameName, gameName) {
			g.Rating = rating
			return s.write(doc)
		}
	}
	doc.Games = append(doc.Games, GameRecord{
		UserID:    userID,
		GameName:  gameName,
		Rating:    rating,
		CreatedAt: s.now().Unix(),
	})
	return s.write(doc)
}

// ListGames returns the user's games in insertion order. comparator ">" or
// "<" with a threshold narrows by rating; anything else returns all.
func (s *Store) ListGames(userID int64, comparator string, threshold int) ([]GameRecord, error) {
	s.mu.Lock()
	doc, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var games []GameRecord
	for _, g := range doc.Games {
		if g.UserID != userID {
			continue
		}
		switch comparator {
		case ">":
			if g.Rating <= threshold {
				continue
			}
		case "<":
			if g.Rating >= threshold {
				continue
			}
		}
		games = append(games, g)
	}
	return games, nil
}

// RandomGame picks one of the user's (optionally filtered) games uniformly,
// or nil when none match.
func (s *Store) RandomGame(userID int64, comparator string, threshold int) (*GameRecord, error) {
	games, err := s.ListGames(userID, comparator, threshold)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	g := games[rand.Intn(len(games))]
	return &g, nil
}

// IncrementStat bumps the user's counter for a command by one.
func (s *Store) IncrementStat(userID int64, command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	key := strconv.FormatInt(userID, 10)
	user := doc.CommandStats[key]
	if user == nil {
		user = map[string]int{}
		doc.CommandStats[key] = user
	}
	user[command]++
	return s.write(doc)
}

// Stats returns the user's per-command counters, never nil.
func (s *Store) Stats(userID int64) (map[string]int, error) {
	s.mu.Lock()
	doc, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	user := doc.CommandStats[strconv.FormatInt(userID, 10)]
	out := make(map[string]int, len(user))
	for k, v := range user {
		out[k] = v
	}
	return out, nil
}
