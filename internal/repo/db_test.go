package repo

import (
	"context"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		name       string
		dsn        string
		sslDisable bool
		want       string
	}{
		{
			name: "url without params gets require",
			dsn:  "postgres://host/db",
			want: "postgres://host/db?sslmode=require",
		},
		{
			name: "url with params appends",
			dsn:  "postgres://host/db?connect_timeout=5",
			want: "postgres://host/db?connect_timeout=5&sslmode=require",
		},
		{
			name:       "disable toggle",
			dsn:        "postgres://host/db",
			sslDisable: true,
			want:       "postgres://host/db?sslmode=disable",
		},
		{
			name: "explicit sslmode untouched",
			dsn:  "postgres://host/db?sslmode=verify-full",
			want: "postgres://host/db?sslmode=verify-full",
		},
		{
			name:       "explicit sslmode wins over toggle",
			dsn:        "postgres://host/db?sslmode=require",
			sslDisable: true,
			want:       "postgres://host/db?sslmode=require",
		},
		{
			name: "keyword style",
			dsn:  "host=localhost dbname=app",
			want: "host=localhost dbname=app sslmode=require",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeDSN(tc.dsn, tc.sslDisable); got != tc.want {
				t.Fatalf("NormalizeDSN(%q, %v) = %q; want %q", tc.dsn, tc.sslDisable, got, tc.want)
			}
		})
	}
}

func TestPing(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:repo_ping?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := Ping(context.Background(), db); err != nil {
		t.Fatalf("Ping on live DB: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	_ = sqlDB.Close()

	if err := Ping(context.Background(), db); err == nil {
		t.Fatal("Ping on closed DB succeeded; want error")
	}
}
