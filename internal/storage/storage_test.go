package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cubesight/cubesight"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	require.NoError(t, err)
	require.Equal(t, len(migrations), version)
}

func TestSolveLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("R U R' U'", "test solve")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, id, s.SolveID)
	require.Nil(t, s.EndedAt)
	require.Equal(t, "R U R' U'", *s.ScrambleText)
	require.Equal(t, "test solve", *s.Notes)

	require.NoError(t, repo.End(id, "solved", true))

	s, err = repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.EndedAt)
	require.NotNil(t, s.DurationMs)
	require.True(t, s.Solved)
	require.Equal(t, "solved", *s.FinalPhase)
}

func TestGetMissingSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	s, err := repo.Get("no-such-id")
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestGetLastAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	first, err := repo.Create("", "")
	require.NoError(t, err)
	// started_at has second resolution; space the rows out.
	time.Sleep(1100 * time.Millisecond)
	second, err := repo.Create("", "")
	require.NoError(t, err)

	last, err := repo.GetLast()
	require.NoError(t, err)
	require.Equal(t, second, last.SolveID)

	solves, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, solves, 2)
	require.Equal(t, second, solves[0].SolveID)
	require.Equal(t, first, solves[1].SolveID)
}

func TestMoveRepository(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	moves := NewMoveRepository(db)

	id, err := solves.Create("", "")
	require.NoError(t, err)

	_, err = moves.Create(id, 0, 100, cubesight.R, "cross")
	require.NoError(t, err)
	_, err = moves.Create(id, 1, 350, cubesight.UPrime, "")
	require.NoError(t, err)

	records, err := moves.GetBySolve(id)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "R", records[0].Notation)
	require.Equal(t, "cross", *records[0].Phase)
	require.Equal(t, "U'", records[1].Notation)
	require.Nil(t, records[1].Phase)

	n, err := moves.CountBySolve(id)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMoveCreateBatch(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	moves := NewMoveRepository(db)

	id, err := solves.Create("", "")
	require.NoError(t, err)

	now := time.Now()
	seq := []cubesight.Move{
		cubesight.R.WithTime(now),
		cubesight.U.WithTime(now.Add(200 * time.Millisecond)),
		cubesight.RPrime.WithTime(now.Add(400 * time.Millisecond)),
	}
	require.NoError(t, moves.CreateBatch(id, seq, 0))

	records, err := moves.GetBySolve(id)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "R U R'", recordNotation(records))
}

func recordNotation(records []MoveRecord) string {
	out := ""
	for i, r := range records {
		if i > 0 {
			out += " "
		}
		out += r.Notation
	}
	return out
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	moves := NewMoveRepository(db)

	id, err := solves.Create("", "")
	require.NoError(t, err)
	_, err = moves.Create(id, 0, 0, cubesight.F, "")
	require.NoError(t, err)

	require.NoError(t, solves.Delete(id))

	n, err := moves.CountBySolve(id)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestPhaseMarks(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	marks := NewPhaseMarkRepository(db)

	id, err := solves.Create("", "")
	require.NoError(t, err)

	require.NoError(t, marks.Create(id, "cross", "", 12, 4000))
	require.NoError(t, marks.Create(id, "oll", "Sune", 38, 11000))

	got, err := marks.GetBySolve(id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "cross", got[0].Phase)
	require.Nil(t, got[0].Detail)
	require.Equal(t, "Sune", *got[1].Detail)
}
