package hunt_test

import (
	"testing"

	"github.com/jobhunt-dev/hunt"
	"github.com/stretchr/testify/assert"
)

func TestIsNavigationArtifact(t *testing.T) {
	t.Parallel()

	t.Run("rejects short fragments", func(t *testing.T) {
		t.Parallel()

		assert.True(t, hunt.IsNavigationArtifact(""))
		assert.True(t, hunt.IsNavigationArtifact("   "))
		assert.True(t, hunt.IsNavigationArtifact("View"))
		assert.True(t, hunt.IsNavigationArtifact("123456789"))
		assert.False(t, hunt.IsNavigationArtifact("1234567890"))
	})

	t.Run("rejects exact blocklist matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		assert.True(t, hunt.IsNavigationArtifact("Search for jobs"))
		assert.True(t, hunt.IsNavigationArtifact("SEARCH FOR JOBS"))
		assert.True(t, hunt.IsNavigationArtifact("See all jobs"))
		assert.True(t, hunt.IsNavigationArtifact("Search other jobs"))
	})

	t.Run("rejects prefix and substring patterns", func(t *testing.T) {
		t.Parallel()

		assert.True(t, hunt.IsNavigationArtifact("Jobs similar to Senior Engineer"))
		assert.True(t, hunt.IsNavigationArtifact("Jobs in Seattle, WA"))
		assert.True(t, hunt.IsNavigationArtifact("Manage job alerts"))
		assert.True(t, hunt.IsNavigationArtifact("Unsubscribe from alerts"))
		assert.True(t, hunt.IsNavigationArtifact("Privacy settings"))
	})

	t.Run("rejects search-result link text ending in jobs", func(t *testing.T) {
		t.Parallel()

		assert.True(t, hunt.IsNavigationArtifact("Engineering Manager jobs"))
		assert.True(t, hunt.IsNavigationArtifact("DevOps Engineer Jobs"))
	})

	t.Run("allows genuine postings", func(t *testing.T) {
		t.Parallel()

		assert.False(t, hunt.IsNavigationArtifact("Senior Software Engineer at Google"))
		assert.False(t, hunt.IsNavigationArtifact("Principal Engineer - Cloud Infrastructure"))
		assert.False(t, hunt.IsNavigationArtifact("Jobs Program Manager at Google"))
	})
}

func TestIsSearchLink(t *testing.T) {
	t.Parallel()

	assert.True(t, hunt.IsSearchLink("https://www.linkedin.com/comm/jobs/search"))
	assert.True(t, hunt.IsSearchLink("https://www.linkedin.com/comm/jobs/search?keywords=Engineering+Manager"))
	assert.True(t, hunt.IsSearchLink("https://www.linkedin.com/comm/jobs/alerts"))
	assert.True(t, hunt.IsSearchLink("https://www.indeed.com/jobs/search?q=engineer"))

	assert.False(t, hunt.IsSearchLink("https://www.linkedin.com/jobs/view/123456"))
	assert.False(t, hunt.IsSearchLink("https://www.indeed.com/viewjob?jk=abc123"))
}

func TestCleanTrackingURL(t *testing.T) {
	t.Parallel()

	t.Run("strips query parameters", func(t *testing.T) {
		t.Parallel()

		got := hunt.CleanTrackingURL("https://www.linkedin.com/jobs/view/123456?refId=abcd&trackingId=xyz")

		assert.Equal(t, "https://www.linkedin.com/jobs/view/123456", got)
	})

	t.Run("leaves clean URLs unchanged", func(t *testing.T) {
		t.Parallel()

		got := hunt.CleanTrackingURL("https://jobs.example.com/posting/12345")

		assert.Equal(t, "https://jobs.example.com/posting/12345", got)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, hunt.CleanTrackingURL(""))
	})
}

func TestDetectClosed(t *testing.T) {
	t.Parallel()

	assert.True(t, hunt.DetectClosed("This job is No Longer Accepting Applications."))
	assert.True(t, hunt.DetectClosed("Unfortunately this position has been filled."))
	assert.True(t, hunt.DetectClosed("The application window has closed for this role."))
	assert.False(t, hunt.DetectClosed("We are actively hiring for this role."))
	assert.False(t, hunt.DetectClosed(""))
}
