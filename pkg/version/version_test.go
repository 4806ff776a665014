package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setVersion(t *testing.T, v string) {
	t.Helper()
	prev := version
	version = v
	t.Cleanup(func() { version = prev })
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())

	v, err := Parse()
	require.NoError(t, err, "the default version must be a semantic version")
	assert.Equal(t, uint64(0), v.Major())
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0-dev", want: true},
		{version: "1.2.3", want: false},
		{version: "v1.2.3", want: false},
		{version: "1.0.0-rc.1", want: true},
		{version: "not-a-version", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			setVersion(t, tt.version)
			assert.Equal(t, tt.want, IsDevelopment())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	setVersion(t, "not-a-version")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-version")
}
