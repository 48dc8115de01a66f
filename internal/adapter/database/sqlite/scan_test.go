package sqlite

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanTarget struct {
	ID        int
	Name      string
	Nickname  *string
	Age       *int
	Active    bool
	CreatedAt time.Time
}

func openScanDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE targets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		nickname TEXT,
		age INTEGER,
		active BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	)`)
	require.NoError(t, err)

	return db
}

func TestScanRowToStruct(t *testing.T) {
	db := openScanDB(t)
	scanner := NewScanner()

	now := time.Now().UTC().Truncate(time.Second)

	_, err := db.Exec(
		"INSERT INTO targets (name, nickname, age, active, created_at) VALUES (?, ?, ?, ?, ?)",
		"Full Row", "nick", 33, true, now,
	)
	require.NoError(t, err)

	rows, err := db.Query("SELECT * FROM targets LIMIT 1")
	require.NoError(t, err)
	defer rows.Close()

	var target scanTarget
	require.NoError(t, scanner.ScanRowToStruct(rows, &target))

	assert.Equal(t, 1, target.ID)
	assert.Equal(t, "Full Row", target.Name)
	require.NotNil(t, target.Nickname)
	assert.Equal(t, "nick", *target.Nickname)
	require.NotNil(t, target.Age)
	assert.Equal(t, 33, *target.Age)
	assert.True(t, target.Active)
	assert.Equal(t, now.Unix(), target.CreatedAt.Unix())
}

func TestScanRowToStruct_NullsStayNil(t *testing.T) {
	db := openScanDB(t)
	scanner := NewScanner()

	_, err := db.Exec(
		"INSERT INTO targets (name, active, created_at) VALUES (?, ?, ?)",
		"Sparse Row", false, time.Now(),
	)
	require.NoError(t, err)

	rows, err := db.Query("SELECT * FROM targets LIMIT 1")
	require.NoError(t, err)
	defer rows.Close()

	var target scanTarget
	require.NoError(t, scanner.ScanRowToStruct(rows, &target))

	assert.Nil(t, target.Nickname)
	assert.Nil(t, target.Age)
	assert.False(t, target.Active)
}

func TestScanRowToStruct_NoRows(t *testing.T) {
	db := openScanDB(t)
	scanner := NewScanner()

	rows, err := db.Query("SELECT * FROM targets")
	require.NoError(t, err)
	defer rows.Close()

	var target scanTarget
	err = scanner.ScanRowToStruct(rows, &target)

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestScanRowsToSlice(t *testing.T) {
	db := openScanDB(t)
	scanner := NewScanner()

	for _, name := range []string{"One", "Two", "Three"} {
		_, err := db.Exec(
			"INSERT INTO targets (name, active, created_at) VALUES (?, ?, ?)",
			name, true, time.Now(),
		)
		require.NoError(t, err)
	}

	rows, err := db.Query("SELECT * FROM targets ORDER BY id ASC")
	require.NoError(t, err)
	defer rows.Close()

	targets := make([]scanTarget, 0)
	require.NoError(t, scanner.ScanRowsToSlice(rows, &targets))

	require.Len(t, targets, 3)
	assert.Equal(t, "One", targets[0].Name)
	assert.Equal(t, "Three", targets[2].Name)
}

func TestCamelToSnake(t *testing.T) {
	assert.Equal(t, "id", camelToSnake("ID"))
	assert.Equal(t, "created_at", camelToSnake("CreatedAt"))
	assert.Equal(t, "encrypted_password", camelToSnake("EncryptedPassword"))
}
