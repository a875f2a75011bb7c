package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetBool(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("TEST_BOOL", "true")
	assert.True(t, svc.GetBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "not-a-bool")
	assert.True(t, svc.GetBool("TEST_BOOL", true))

	assert.False(t, svc.GetBool("TEST_BOOL_MISSING", false))
}

func TestGetInt(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, svc.GetInt("TEST_INT", 0))

	t.Setenv("TEST_INT", "forty-two")
	assert.Equal(t, 7, svc.GetInt("TEST_INT", 7))

	assert.Equal(t, 3, svc.GetInt("TEST_INT_MISSING", 3))
}

func TestGetDuration(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("TEST_DUR", "250ms")
	assert.Equal(t, 250*time.Millisecond, svc.GetDuration("TEST_DUR", time.Second))

	t.Setenv("TEST_DUR", "soon")
	assert.Equal(t, time.Second, svc.GetDuration("TEST_DUR", time.Second))

	assert.Equal(t, 5*time.Second, svc.GetDuration("TEST_DUR_MISSING", 5*time.Second))
}

func TestGet(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("TEST_STR", "hello")
	assert.Equal(t, "hello", svc.Get("TEST_STR"))
	assert.Equal(t, "", svc.Get("TEST_STR_MISSING"))
}
