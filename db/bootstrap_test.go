// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"testing"

	"campusvote/auth"
	"campusvote/db"
	"campusvote/store"
	"campusvote/testutil"
)

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// Re-running against an existing schema is a no-op
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}

func TestBootstrap(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if err := db.Bootstrap(conn, "admin", hash); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	admin, err := store.AdminByUsername(conn, "admin")
	if err != nil {
		t.Fatalf("AdminByUsername failed: %v", err)
	}
	if err := auth.CheckPassword(admin.Password, "admin123"); err != nil {
		t.Errorf("Bootstrap password does not verify: %v", err)
	}

	// A second run must not create another account or overwrite the
	// first one's password
	otherHash, err := auth.HashPassword("different")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if err := db.Bootstrap(conn, "admin", otherHash); err != nil {
		t.Fatalf("Second Bootstrap failed: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM administrator`).Scan(&count); err != nil {
		t.Fatalf("Failed to count administrators: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one administrator, got %d", count)
	}

	admin, err = store.AdminByUsername(conn, "admin")
	if err != nil {
		t.Fatalf("AdminByUsername failed: %v", err)
	}
	if err := auth.CheckPassword(admin.Password, "admin123"); err != nil {
		t.Errorf("Expected the original password untouched: %v", err)
	}
}

func TestBootstrapSkippedWhenAdminExists(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.CreateTestAdmin(t, conn, "existing", "password1")

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if err := db.Bootstrap(conn, "admin", hash); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	if _, err := store.AdminByUsername(conn, "admin"); err == nil {
		t.Error("Bootstrap must not add a default admin when one already exists")
	}
}
