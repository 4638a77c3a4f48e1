// Package reader fetches content feeds by relative name and decodes them into
// core records.
package reader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/offgrid/almanac/core"
)

// Reader opens a named feed resource, e.g. "data/reflections.json".
type Reader interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// ErrEmptyFeed is returned by Decode when the payload is an empty array.
var ErrEmptyFeed = errors.New("feed is empty")

// FetchReflections reads and decodes a reflections feed. It reports false on
// any failure; the failure is logged, never returned.
func FetchReflections(ctx context.Context, r Reader, name string) ([]core.Reflection, bool) {
	return fetch[core.Reflection](ctx, r, name)
}

// FetchMotivations reads and decodes a motivations feed. It reports false on
// any failure; the failure is logged, never returned.
func FetchMotivations(ctx context.Context, r Reader, name string) ([]core.Motivation, bool) {
	return fetch[core.Motivation](ctx, r, name)
}

func fetch[T any](ctx context.Context, r Reader, name string) ([]T, bool) {
	if r == nil {
		log.Warn("fetch feed", "name", name, "err", "no reader configured")
		return nil, false
	}

	rc, err := r.Open(ctx, name)
	if err != nil {
		log.Warn("fetch feed", "name", name, "err", err)
		return nil, false
	}
	defer rc.Close()

	feed, err := Decode[T](rc)
	if err != nil {
		log.Warn("decode feed", "name", name, "err", err)
		return nil, false
	}
	log.Debug("fetched feed", "name", name, "records", len(feed))
	return feed, true
}

// Decode reads a JSON array of records. A payload that is not an array, or is
// an empty array, is an error.
func Decode[T any](r io.Reader) ([]T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("feed is not a JSON array: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyFeed
	}

	feed := make([]T, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal(item, &feed[i]); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", i, err)
		}
	}
	return feed, nil
}
