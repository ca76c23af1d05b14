package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersion(t *testing.T) {
	t.Run("Should create valid version from string", func(t *testing.T) {
		version, err := NewVersion("1.2.3")
		require.NoError(t, err)
		assert.NotNil(t, version)
		assert.Equal(t, "1.2.3", version.String())
	})
	t.Run("Should return error for invalid version string", func(t *testing.T) {
		version, err := NewVersion("invalid")
		assert.Error(t, err)
		assert.Nil(t, version)
	})
	t.Run("Should strip v prefix from canonical form", func(t *testing.T) {
		version, err := NewVersion("v1.2.3")
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", version.String())
	})
	t.Run("Should keep prerelease and build metadata", func(t *testing.T) {
		version, err := NewVersion("1.2.3-rc.1+build5")
		require.NoError(t, err)
		assert.Equal(t, "1.2.3-rc.1+build5", version.String())
	})
}

func TestVersion_TagName(t *testing.T) {
	t.Run("Should prefix the version with v", func(t *testing.T) {
		version, err := NewVersion("0.8.3")
		require.NoError(t, err)
		assert.Equal(t, "v0.8.3", version.TagName())
	})
	t.Run("Should not double the prefix for v-prefixed input", func(t *testing.T) {
		version, err := NewVersion("v0.8.3")
		require.NoError(t, err)
		assert.Equal(t, "v0.8.3", version.TagName())
	})
}

func TestNormalizeNextVersion(t *testing.T) {
	t.Run("Should append snapshot suffix when absent", func(t *testing.T) {
		assert.Equal(t, "1.3.0-SNAPSHOT", NormalizeNextVersion("1.3.0"))
	})
	t.Run("Should append the suffix exactly once", func(t *testing.T) {
		once := NormalizeNextVersion("1.3.0")
		assert.Equal(t, once, NormalizeNextVersion(once))
	})
	t.Run("Should leave suffixed input unchanged", func(t *testing.T) {
		assert.Equal(t, "1.3.0-SNAPSHOT", NormalizeNextVersion("1.3.0-SNAPSHOT"))
	})
	t.Run("Should respect a bare SNAPSHOT ending", func(t *testing.T) {
		assert.Equal(t, "1.3.0SNAPSHOT", NormalizeNextVersion("1.3.0SNAPSHOT"))
	})
}

func TestNewNextVersion(t *testing.T) {
	t.Run("Should normalize and parse a plain version", func(t *testing.T) {
		version, err := NewNextVersion("1.3.0")
		require.NoError(t, err)
		assert.Equal(t, "1.3.0-SNAPSHOT", version.String())
		assert.True(t, version.IsSnapshot())
	})
	t.Run("Should accept an already suffixed version", func(t *testing.T) {
		version, err := NewNextVersion("1.3.0-SNAPSHOT")
		require.NoError(t, err)
		assert.Equal(t, "1.3.0-SNAPSHOT", version.String())
	})
	t.Run("Should reject input that is not a valid version", func(t *testing.T) {
		version, err := NewNextVersion("next")
		assert.Error(t, err)
		assert.Nil(t, version)
	})
}

func TestVersion_IsSnapshot(t *testing.T) {
	t.Run("Should report false for a release version", func(t *testing.T) {
		version, err := NewVersion("1.2.3")
		require.NoError(t, err)
		assert.False(t, version.IsSnapshot())
	})
	t.Run("Should report true for a snapshot version", func(t *testing.T) {
		version, err := NewVersion("1.3.0-SNAPSHOT")
		require.NoError(t, err)
		assert.True(t, version.IsSnapshot())
	})
}
