package resolver

import (
	"testing"

	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/catalog"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r := New(catalog.Builtin())

	p, err := r.Resolve("srt-transport")
	require.NoError(t, err)
	assert.Equal(t, "SRT Transport", p.Name)

	_, err = r.Resolve("does-not-exist")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestRelatedTo(t *testing.T) {
	r := New(catalog.Builtin())

	t.Run("excludes the current project", func(t *testing.T) {
		got := r.RelatedTo("srt-transport", DefaultRelatedLimit)
		require.Len(t, got, 3)
		assert.Equal(t, "drm-security", got[0].Slug)
		assert.Equal(t, "apura-cleaning", got[1].Slug)
		assert.Equal(t, "eerst-helpen", got[2].Slug)
	})

	t.Run("current project in the middle", func(t *testing.T) {
		got := r.RelatedTo("drm-security", 3)
		assert.Equal(t, []string{"srt-transport", "apura-cleaning", "eerst-helpen"}, slugsOf(got))
	})

	t.Run("unknown slug excludes nothing", func(t *testing.T) {
		got := r.RelatedTo("does-not-exist", 3)
		assert.Equal(t, []string{"srt-transport", "drm-security", "apura-cleaning"}, slugsOf(got))
	})

	t.Run("never includes the slug and respects the limit", func(t *testing.T) {
		for _, p := range catalog.Builtin().AllProjects() {
			got := r.RelatedTo(p.Slug, 3)
			assert.LessOrEqual(t, len(got), 3)
			assert.NotContains(t, slugsOf(got), p.Slug)
		}
	})

	t.Run("limit larger than catalog", func(t *testing.T) {
		assert.Len(t, r.RelatedTo("k-mensen", 50), 9)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		got := r.RelatedTo("k-mensen", 0)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func slugsOf(ps []domain.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Slug)
	}
	return out
}
