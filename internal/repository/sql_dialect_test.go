package repository

import (
	"testing"
)

func TestBuildLikeConditionSqlite(t *testing.T) {
	db := setupRepositoryTestDB(t)
	condition, args := buildLikeCondition(db, []string{"name", "description"}, "  para ")
	if condition != "(name LIKE ? OR description LIKE ?)" {
		t.Fatalf("unexpected condition: %s", condition)
	}
	if len(args) != 2 || args[0] != "%para%" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildLikeConditionEmptyKeyword(t *testing.T) {
	condition, args := buildLikeCondition(nil, []string{"name"}, "   ")
	if condition != "" || args != nil {
		t.Fatalf("expected empty condition, got %q %v", condition, args)
	}
}

func TestDialectNameDefaultsToSqlite(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("want sqlite, got %s", got)
	}
	if got := likeOperator(nil); got != "LIKE" {
		t.Fatalf("want LIKE, got %s", got)
	}
}
