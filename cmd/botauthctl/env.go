package main

import (
	"io"
	"log/slog"

	"botauth/config"
	"botauth/internal/domain/service"
	"botauth/internal/errors"
	"botauth/internal/infra/auth"
	logs "botauth/internal/infra/log"
	"botauth/internal/infra/persistence/relational"
	"botauth/internal/infra/qrcode"
	"botauth/internal/usecase"
	"botauth/internal/usecase/impl"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

// env holds what the subcommands share. Everything past prompt is built lazily.
type env struct {
	out        io.Writer
	loadConfig func(dirs ...string) (*config.Config, error)
	prompt     func(label string) (string, error)

	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
	qr     service.QRCodeService
}

func (e *env) setup(c *cli.Context) error {
	var dirs []string
	if dir := c.String("config-dir"); dir != "" {
		dirs = append(dirs, dir)
	}

	cfg, err := e.loadConfig(dirs...)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if driver := c.String("driver"); driver != "" {
		cfg.Database.Driver = driver
	}
	if path := c.String("sqlite-path"); path != "" {
		cfg.Database.SQLitePath = path
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logs.NewWithWriter(c.App.ErrWriter, cfg.Env.Log, cfg.Env.ServiceName)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	e.cfg = cfg
	e.logger = logger

	return nil
}

func (e *env) database() (*gorm.DB, error) {
	if e.db != nil {
		return e.db, nil
	}

	db, err := relational.Open(e.cfg, e.logger)
	if err != nil {
		return nil, err
	}
	e.db = db

	return db, nil
}

func (e *env) qrcodes() service.QRCodeService {
	if e.qr == nil {
		e.qr = qrcode.NewFromConfig(e.cfg)
	}

	return e.qr
}

// credentials builds the credential service, applying migrations first when autoMigrate is set.
func (e *env) credentials(c *cli.Context) (usecase.CredentialUsecase, error) {
	db, err := e.database()
	if err != nil {
		return nil, err
	}

	if e.cfg.Database.AutoMigrate {
		if err := relational.Migrate(c.Context, db, e.cfg.Database.Driver); err != nil {
			return nil, err
		}
	}

	return impl.NewCredentialService(impl.CredentialServiceParams{
		TxManager: relational.NewTransactionManager(db),
		Hasher:    auth.NewBcryptHasher(e.cfg),
		Secrets:   auth.NewSecretGenerator(e.cfg),
		Config:    e.cfg,
		Logger:    e.logger,
	}), nil
}

func (e *env) close() error {
	if e.db == nil {
		return nil
	}

	sqlDB, err := e.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	e.db = nil

	return errors.WithStack(sqlDB.Close())
}
