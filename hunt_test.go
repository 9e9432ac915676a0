package hunt_test

import (
	"testing"

	"github.com/jobhunt-dev/hunt"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := hunt.Errorf(hunt.ENOTFOUND, "job %q not found", "test")

	assert.Equal(t, hunt.ENOTFOUND, hunt.ErrorCode(err))
	assert.Equal(t, "job \"test\" not found", hunt.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, hunt.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, hunt.ErrorMessage(nil))
}

func TestJobValidate(t *testing.T) {
	t.Parallel()

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()

		job := &hunt.Job{}

		err := job.Validate()

		assert.Equal(t, hunt.EINVALID, hunt.ErrorCode(err))
	})

	t.Run("rejects reversed pay range", func(t *testing.T) {
		t.Parallel()

		lo, hi := int64(200000), int64(150000)
		job := &hunt.Job{Title: "Engineer", PayMin: &lo, PayMax: &hi}

		err := job.Validate()

		assert.Equal(t, hunt.EINVALID, hunt.ErrorCode(err))
	})

	t.Run("accepts minimal job", func(t *testing.T) {
		t.Parallel()

		job := &hunt.Job{Title: "Engineer"}

		assert.NoError(t, job.Validate())
	})
}
