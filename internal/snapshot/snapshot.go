// Package snapshot loads indicator snapshots produced by the upstream stage.
package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/Alias1177/positions/internal/model"
	httpClient "github.com/Alias1177/positions/internal/platform/http"
)

// ErrEmptySnapshot is returned when a document holds no indicators.
var ErrEmptySnapshot = errors.New("snapshot is empty")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source yields a snapshot.
type Source interface {
	Load(ctx context.Context) (model.Snapshot, error)
}

// Decode parses a JSON object or a YAML mapping into a Snapshot.
func Decode(data []byte) (model.Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptySnapshot
	}

	var snap model.Snapshot
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &snap); err != nil {
			return nil, fmt.Errorf("decoding json snapshot: %w", err)
		}
	} else if err := yaml.Unmarshal(trimmed, &snap); err != nil {
		return nil, fmt.Errorf("decoding yaml snapshot: %w", err)
	}

	if len(snap) == 0 {
		return nil, ErrEmptySnapshot
	}
	return snap, nil
}

// File reads a snapshot document from disk.
type File struct {
	Path string
}

func (f File) Load(_ context.Context) (model.Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}
	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	log.Debug().Str("path", f.Path).Int("keys", len(snap)).Msg("Snapshot loaded from file")
	return snap, nil
}

// Remote fetches a snapshot document from the upstream indicator service.
type Remote struct {
	url    string
	client *httpClient.Client
	logger zerolog.Logger
}

// NewRemote creates a Remote source for url.
func NewRemote(url string, client *httpClient.Client) *Remote {
	return &Remote{
		url:    url,
		client: client,
		logger: log.With().Str("component", "snapshot_remote").Logger(),
	}
}

func (r *Remote) Load(ctx context.Context) (model.Snapshot, error) {
	body, err := r.client.Get(ctx, r.url)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshot: %w", err)
	}
	snap, err := Decode(body)
	if err != nil {
		r.logger.Error().Err(err).Str("url", r.url).Msg("Error parsing snapshot")
		return nil, err
	}
	r.logger.Debug().Int("keys", len(snap)).Msg("Fetched snapshot")
	return snap, nil
}
