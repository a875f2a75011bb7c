package rodsession

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"page-helper/internal/domain/entity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Headless)
	assert.Zero(t, cfg.SlowMotion)
	assert.False(t, cfg.NoSandbox, "should be secure by default")
	assert.False(t, cfg.DevTools)
	assert.Equal(t, 5*time.Second, cfg.IdleWait)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://example.com", false},
		{"https with path", "https://example.com/login?next=%2F", false},
		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"javascript", "javascript:alert(1)", true},
		{"scheme only", "https://", true},
		{"relative", "/login", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsStale(t *testing.T) {
	assert.True(t, isStale(errors.New("Could not find node with given id")))
	assert.True(t, isStale(errors.New("{-32000 Cannot find context with specified id}")))
	assert.True(t, isStale(errors.New("Node is detached from document")))

	assert.False(t, isStale(nil))
	assert.False(t, isStale(errors.New("cannot find element")))
	assert.False(t, isStale(errors.New("net::ERR_CONNECTION_REFUSED")))
}

func TestMapElementErr(t *testing.T) {
	assert.NoError(t, mapElementErr(nil))

	err := mapElementErr(errors.New("Could not find node with given id"))
	assert.ErrorIs(t, err, entity.ErrStale)

	plain := errors.New("timeout")
	assert.Same(t, plain, mapElementErr(plain))
}
