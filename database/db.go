package database

import (
	"database/sql"
	"fmt"
	"math/big"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/mysql"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/nftbridge/config"
	"github.com/sisu-network/nftbridge/types"
)

// Database persists the bridge's only durable state: the MessageSent audit trail and
// the token id counter backing OriginateMint.
type Database interface {
	Init() error

	SaveReceipt(chain string, receipt *types.MessageReceipt) error
	GetReceipt(chain string, messageId common.Hash) (*types.MessageReceipt, error)

	// PeekTokenId returns the next fresh token id for the chain without consuming
	// it. Ids start at 1 and never repeat once advanced.
	PeekTokenId(chain string) (*big.Int, error)

	// AdvanceTokenId consumes the current id after a successful dispatch.
	AdvanceTokenId(chain string) error
}

type dbLogger struct {
}

func (logger *dbLogger) Printf(format string, v ...interface{}) {
	fmt.Printf(format, v...)
}

func (logger *dbLogger) Verbose() bool {
	return true
}

type DefaultDatabase struct {
	cfg  *config.Config
	db   *sql.DB
	lock *sync.Mutex
}

func NewDb(cfg *config.Config) Database {
	return &DefaultDatabase{
		cfg:  cfg,
		lock: &sync.Mutex{},
	}
}

func (d *DefaultDatabase) Connect() error {
	if d.cfg.InMemory {
		database, err := sql.Open("sqlite3", ":memory:")
		if err != nil {
			return err
		}

		// Every sqlite :memory: connection is its own database, so the pool must
		// stay on a single connection.
		database.SetMaxOpenConns(1)

		d.db = database
		return nil
	}

	host := d.cfg.DbHost
	if host == "" {
		return fmt.Errorf("DB host cannot be empty")
	}

	port := d.cfg.DbPort
	username := d.cfg.DbUsername
	password := d.cfg.DbPassword
	schema := d.cfg.DbSchema

	// Connect to the db
	url := fmt.Sprintf("%s:%s@tcp(%s:%d)/", username, password, host, port)
	database, err := sql.Open("mysql", url)
	if err != nil {
		return err
	}
	_, err = database.Exec("CREATE DATABASE IF NOT EXISTS " + schema)
	if err != nil {
		return err
	}
	database.Close()

	database, err = sql.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", username, password, host, port, schema))
	if err != nil {
		return err
	}

	d.db = database
	log.Info("Db is connected successfully")
	return nil
}

func (d *DefaultDatabase) DoMigration() error {
	migrationDir, err := MigrationsTempDir()
	if err != nil {
		return err
	}
	defer os.RemoveAll(migrationDir)

	var m *migrate.Migrate
	if d.cfg.InMemory {
		driver, err := sqlite3.WithInstance(d.db, &sqlite3.Config{})
		if err != nil {
			return err
		}

		m, err = migrate.NewWithDatabaseInstance("file://"+migrationDir, "sqlite3", driver)
		if err != nil {
			return err
		}
	} else {
		driver, err := mysql.WithInstance(d.db, &mysql.Config{})
		if err != nil {
			return err
		}

		m, err = migrate.NewWithDatabaseInstance("file://"+migrationDir, "mysql", driver)
		if err != nil {
			return err
		}
	}

	m.Log = &dbLogger{}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

func (d *DefaultDatabase) Init() error {
	err := d.Connect()
	if err != nil {
		log.Error("Failed to connect to DB. Err =", err)
		return err
	}

	return d.DoMigration()
}

func (d *DefaultDatabase) SaveReceipt(chain string, receipt *types.MessageReceipt) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	_, err := d.db.Exec(
		"INSERT INTO message_receipts (chain, message_id, destination_selector, receiver, fee_token, fee_paid) VALUES (?, ?, ?, ?, ?, ?)",
		chain,
		receipt.MessageId.Hex(),
		receipt.DestinationSelector,
		receipt.Receiver.Hex(),
		receipt.FeeToken.Hex(),
		receipt.FeePaid.String(),
	)

	return err
}

func (d *DefaultDatabase) GetReceipt(chain string, messageId common.Hash) (*types.MessageReceipt, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	row := d.db.QueryRow(
		"SELECT destination_selector, receiver, fee_token, fee_paid FROM message_receipts WHERE chain = ? AND message_id = ?",
		chain, messageId.Hex(),
	)

	var destinationSelector uint64
	var receiver, feeToken, feePaid string
	if err := row.Scan(&destinationSelector, &receiver, &feeToken, &feePaid); err != nil {
		return nil, err
	}

	fee, ok := new(big.Int).SetString(feePaid, 10)
	if !ok {
		return nil, fmt.Errorf("corrupted fee value %s for message %s", feePaid, messageId)
	}

	return &types.MessageReceipt{
		MessageId:           messageId,
		DestinationSelector: destinationSelector,
		Receiver:            common.HexToAddress(receiver),
		FeeToken:            common.HexToAddress(feeToken),
		FeePaid:             fee,
	}, nil
}

func (d *DefaultDatabase) PeekTokenId(chain string) (*big.Int, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.peekTokenId(chain)
}

func (d *DefaultDatabase) peekTokenId(chain string) (*big.Int, error) {
	row := d.db.QueryRow("SELECT next_id FROM token_counter WHERE chain = ?", chain)

	var s string
	err := row.Scan(&s)
	switch {
	case err == sql.ErrNoRows:
		if _, err := d.db.Exec(
			"INSERT INTO token_counter (chain, next_id) VALUES (?, ?)", chain, "1"); err != nil {
			return nil, err
		}

		return big.NewInt(1), nil

	case err != nil:
		return nil, err
	}

	next, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("corrupted token counter %s for chain %s", s, chain)
	}

	return next, nil
}

func (d *DefaultDatabase) AdvanceTokenId(chain string) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	next, err := d.peekTokenId(chain)
	if err != nil {
		return err
	}

	following := new(big.Int).Add(next, big.NewInt(1))
	_, err = d.db.Exec(
		"UPDATE token_counter SET next_id = ? WHERE chain = ?", following.String(), chain)

	return err
}
