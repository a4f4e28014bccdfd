package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"skimbox/shared"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks skimbox/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetUser(id string) (*User, error)
	GetActiveUsers() ([]*User, error)
	SetUserActive(userId string, active bool) error
	GetLastSnoozedAt(userId string) (*time.Time, error)
	SetLastSnoozedAt(userId string, when time.Time) error
	AddItemIfNew(item *Item) (isNew bool, err error)
	GetDigestPool(userId string, since time.Time) ([]*PoolItem, error)
	AddSendEvent(userId, itemId, action string, when time.Time) error
	GetLastSentAt(userId string) (time.Time, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

const userFields = `id, created_at, email, timezone, active, last_snoozed_at, send_count, source_account_id, source_token`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var res User
	var lastSnoozed sql.NullTime
	err := row.Scan(&res.Id, &res.CreatedAt, &res.Email, &res.Timezone, &res.Active, &lastSnoozed,
		&res.SendCount, &res.SourceAccountId, &res.SourceToken)
	if err != nil {
		return nil, err
	}
	if lastSnoozed.Valid {
		t := lastSnoozed.Time
		res.LastSnoozedAt = &t
	}
	return &res, nil
}

func (repo *Repo) GetUser(id string) (*User, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+userFields+` FROM users WHERE id=?`, id)
	res, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetActiveUsers() ([]*User, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT ` + userFields + ` FROM users WHERE active=1 ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*User, 0)
	for rows.Next() {
		var usr *User
		if usr, err = scanUser(rows); err != nil {
			return nil, err
		}
		res = append(res, usr)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) SetUserActive(userId string, active bool) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE users SET active=? WHERE id=?`, active, userId)
	return err
}

func (repo *Repo) GetLastSnoozedAt(userId string) (*time.Time, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT last_snoozed_at FROM users WHERE id=?`, userId)
	var lastSnoozed sql.NullTime
	if err := row.Scan(&lastSnoozed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if !lastSnoozed.Valid {
		return nil, nil
	}
	t := lastSnoozed.Time
	return &t, nil
}

func (repo *Repo) SetLastSnoozedAt(userId string, when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE users SET last_snoozed_at=? WHERE id=?`, when, userId)
	return err
}

// AddItemIfNew inserts an item on first observation. Re-observing an existing
// (user, item) id is a no-op: the stored row, including first_seen_at, is
// never touched again.
func (repo *Repo) AddItemIfNew(item *Item) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO items
    	(id, user_id, author_id, handle, display_name, content, first_seen_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		item.Id, item.UserId, item.AuthorId, item.Handle, item.DisplayName, item.Text, item.FirstSeenAt)
	if err == nil {
		return
	}

	// Duplicate key: item with this id already saved for this user
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			err = nil
			return
		}
	}
	return
}

// GetDigestPool returns the user's eligible items: everything first seen
// since the cutoff, plus never-sent items of any age, minus hidden items.
// Rows come back ordered first_seen_at descending; the sampler depends on
// that order.
func (repo *Repo) GetDigestPool(userId string, since time.Time) ([]*PoolItem, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT i.id, i.author_id, i.first_seen_at,
		EXISTS(SELECT 1 FROM send_events s WHERE s.user_id=i.user_id AND s.item_id=i.id AND s.action='sent')
		FROM items i
		WHERE i.user_id=?
		AND (i.first_seen_at>=?
			OR NOT EXISTS(SELECT 1 FROM send_events s WHERE s.user_id=i.user_id AND s.item_id=i.id AND s.action='sent'))
		AND NOT EXISTS(SELECT 1 FROM send_events s WHERE s.user_id=i.user_id AND s.item_id=i.id AND s.action='hide')
		ORDER BY i.first_seen_at DESC`
	rows, err := repo.db.Query(query, userId, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*PoolItem, 0)
	for rows.Next() {
		pi := PoolItem{}
		if err = rows.Scan(&pi.ItemId, &pi.AuthorId, &pi.FirstSeenAt, &pi.EverSent); err != nil {
			return nil, err
		}
		res = append(res, &pi)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) AddSendEvent(userId, itemId, action string, when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO send_events (user_id, item_id, action, occurred_at)
		VALUES(?, ?, ?, ?)`,
		userId, itemId, action, when)
	return err
}

// GetLastSentAt returns the time of the most recent 'sent' event for the
// user; the zero time and a nil error if there has never been one.
func (repo *Repo) GetLastSentAt(userId string) (time.Time, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT occurred_at FROM send_events
		WHERE user_id=? AND action=? ORDER BY occurred_at DESC LIMIT 1`, userId, ActionSent)
	var res time.Time
	if err := row.Scan(&res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return res, nil
}
