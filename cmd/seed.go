package cmd

import (
	"database/sql"
	"fmt"

	"perkly/internal"
	"perkly/internal/logger"
	"perkly/internal/repository"
	"perkly/internal/util"

	_ "github.com/lib/pq"
)

// SeedCatalogFromFile seeds an empty card catalog from a CSV export.
func SeedCatalogFromFile(path string) error {
	log := logger.New()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer dbConn.Close()

	tx, err := dbConn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	cardRepository := repository.NewCardRepository(dbConn)
	inserted, err := internal.SeedCatalog(tx, path, cardRepository)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if inserted == 0 {
		log.Info("catalog already seeded - nothing to do")
	} else {
		log.Infof("seeded %d cards from %s", inserted, path)
	}

	return nil
}
