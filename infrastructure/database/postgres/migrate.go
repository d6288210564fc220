package postgres

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/vfg2006/media-planner-api/infrastructure/database/migrations"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

// Migrate aplica as migrações embutidas até a versão atual do schema
func Migrate(dsn string) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("banco de dados em estado dirty, corrija a migração manualmente")
	}

	if err = mg.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.L.Infof("Schema já está na versão %d", version)
			return nil
		}
		return err
	}

	log.L.Infof("Migrações aplicadas até a versão %d", migrations.Version)
	return nil
}
