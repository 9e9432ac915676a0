package sqlite_test

import (
	"context"
	"testing"

	"github.com/jobhunt-dev/hunt"
	"github.com/jobhunt-dev/hunt/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployerService_GetOrCreateEmployer(t *testing.T) {
	t.Parallel()

	t.Run("creates employer with status ok", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewEmployerService(db)

		employer, err := svc.GetOrCreateEmployer(context.Background(), "Acme Corp")
		require.NoError(t, err)

		assert.NotEmpty(t, employer.ID)
		assert.Equal(t, "Acme Corp", employer.Name)
		assert.Equal(t, hunt.EmployerOK, employer.Status)
	})

	t.Run("returns existing employer regardless of case", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewEmployerService(db)

		first, err := svc.GetOrCreateEmployer(ctx, "Acme Corp")
		require.NoError(t, err)

		second, err := svc.GetOrCreateEmployer(ctx, "acme corp")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Acme Corp", second.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewEmployerService(db)

		_, err := svc.GetOrCreateEmployer(context.Background(), "   ")
		assert.Equal(t, hunt.EINVALID, hunt.ErrorCode(err))
	})
}

func TestEmployerService_ListEmployers(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	ctx := context.Background()
	svc := sqlite.NewEmployerService(db)

	for _, name := range []string{"Zebra Inc", "acme corp", "Beta LLC"} {
		_, err := svc.GetOrCreateEmployer(ctx, name)
		require.NoError(t, err)
	}
	require.NoError(t, svc.SetEmployerStatus(ctx, "Beta LLC", hunt.EmployerYuck))

	t.Run("sorts by name", func(t *testing.T) {
		t.Parallel()

		employers, err := svc.ListEmployers(ctx, nil)
		require.NoError(t, err)
		require.Len(t, employers, 3)
		assert.Equal(t, "acme corp", employers[0].Name)
		assert.Equal(t, "Beta LLC", employers[1].Name)
		assert.Equal(t, "Zebra Inc", employers[2].Name)
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		yuck := hunt.EmployerYuck
		employers, err := svc.ListEmployers(ctx, &yuck)
		require.NoError(t, err)
		require.Len(t, employers, 1)
		assert.Equal(t, "Beta LLC", employers[0].Name)
	})
}

func TestEmployerService_SetEmployerStatus(t *testing.T) {
	t.Parallel()

	t.Run("updates existing employer", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewEmployerService(db)

		_, err := svc.GetOrCreateEmployer(ctx, "Acme Corp")
		require.NoError(t, err)

		require.NoError(t, svc.SetEmployerStatus(ctx, "acme corp", hunt.EmployerNever))

		employer, err := svc.FindEmployerByName(ctx, "Acme Corp")
		require.NoError(t, err)
		assert.Equal(t, hunt.EmployerNever, employer.Status)
	})

	t.Run("creates employer when missing", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		ctx := context.Background()
		svc := sqlite.NewEmployerService(db)

		require.NoError(t, svc.SetEmployerStatus(ctx, "New Co", hunt.EmployerYuck))

		employer, err := svc.FindEmployerByName(ctx, "New Co")
		require.NoError(t, err)
		assert.Equal(t, hunt.EmployerYuck, employer.Status)
	})
}
