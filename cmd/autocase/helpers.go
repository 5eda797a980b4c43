package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"autocase/internal/db"
	"autocase/internal/model"
	"autocase/internal/notify"
)

// openStore builds the store from the loaded configuration.
func openStore() (db.Store, error) {
	driver := viper.GetString("db.driver")
	conn := viper.GetString("db.path")
	if driver == "postgres" || driver == "postgresql" {
		conn = viper.GetString("db.dsn")
	}
	return db.NewStore(db.StoreConfig{
		Driver:           driver,
		ConnectionString: conn,
		HistoryKeep:      viper.GetInt("history.keep"),
	})
}

// loadProject loads the configured project, creating an empty document the
// first time it is referenced.
func loadProject(store db.Store) (*model.Project, error) {
	name := viper.GetString("project")
	p, err := store.LoadProject(name)
	if errors.Is(err, db.ErrNotFound) {
		return model.NewProject(name), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project %q: %w", name, err)
	}
	return p, nil
}

// printJSON writes an indented JSON rendering of v.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// notifier builds the notification manager with a stderr-style logger routed
// through the command's error stream.
func notifier(logf func(string, ...interface{})) *notify.Manager {
	return notify.NewManager(logf)
}
