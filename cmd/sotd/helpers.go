package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/nmrs/sotd-pipeline-sub011/internal/catalog"
	"github.com/nmrs/sotd-pipeline-sub011/internal/common"
	"github.com/nmrs/sotd-pipeline-sub011/internal/correct"
	"github.com/nmrs/sotd-pipeline-sub011/internal/engine"
)

// loadCatalogs loads and compiles the three catalogs named in config.
// Any compilation failure aborts with full file/brand/model context; the
// run must refuse to start on a broken catalog.
func loadCatalogs() (engine.Catalogs, error) {
	brushes, err := catalog.Load(common.ExpandPath(viper.GetString("catalogs.brushes")))
	if err != nil {
		return engine.Catalogs{}, fmt.Errorf("brush catalog: %w", err)
	}
	handles, err := catalog.Load(common.ExpandPath(viper.GetString("catalogs.handles")))
	if err != nil {
		return engine.Catalogs{}, fmt.Errorf("handle catalog: %w", err)
	}
	knots, err := catalog.Load(common.ExpandPath(viper.GetString("catalogs.knots")))
	if err != nil {
		return engine.Catalogs{}, fmt.Errorf("knot catalog: %w", err)
	}
	return engine.Catalogs{Brushes: brushes, Handles: handles, Knots: knots}, nil
}

// loadOverrides loads the correct-matches store. A missing file is not
// an error (a fresh pipeline has no confirmed matches yet); a malformed
// or inconsistent file is.
func loadOverrides() (*correct.Store, string, error) {
	path := common.ExpandPath(viper.GetString("correct_matches.path"))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return correct.NewStore(), path, nil
	}
	store, err := correct.Load(path)
	if err != nil {
		return nil, path, err
	}
	return store, path, nil
}

// buildEngine assembles a classification engine from configuration.
func buildEngine() (*engine.Engine, error) {
	catalogs, err := loadCatalogs()
	if err != nil {
		return nil, err
	}
	overrides, _, err := loadOverrides()
	if err != nil {
		return nil, err
	}
	cfg := engine.Config{CacheSize: viper.GetInt("cache.size")}
	return engine.NewWithConfig(catalogs, overrides, cfg), nil
}
