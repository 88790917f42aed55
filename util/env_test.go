package util_test

import (
	"testing"

	"github.com/cf-containers/container-api/util"
	"github.com/stretchr/testify/assert"
)

func TestOptionalEnv(t *testing.T) {
	t.Setenv("CONTAINER_API_TEST_STR", "value")
	assert.Equal(t, "value", util.OptionalEnv("CONTAINER_API_TEST_STR", "default"))
	assert.Equal(t, "default", util.OptionalEnv("CONTAINER_API_TEST_UNSET", "default"))

	t.Setenv("CONTAINER_API_TEST_EMPTY", "")
	assert.Equal(t, "default", util.OptionalEnv("CONTAINER_API_TEST_EMPTY", "default"))
}
func TestOptionalStrArrEnv(t *testing.T) {
	t.Setenv("CONTAINER_API_TEST_ARR", "https://a.example, https://b.example,")
	assert.Equal(
		t,
		[]string{"https://a.example", "https://b.example"},
		util.OptionalStrArrEnv("CONTAINER_API_TEST_ARR", []string{"*"}),
	)
	assert.Equal(t, []string{"*"}, util.OptionalStrArrEnv("CONTAINER_API_TEST_UNSET", []string{"*"}))

	t.Setenv("CONTAINER_API_TEST_COMMAS", " , ,")
	assert.Equal(t, []string{"*"}, util.OptionalStrArrEnv("CONTAINER_API_TEST_COMMAS", []string{"*"}))
}
func TestOptionalIntEnv(t *testing.T) {
	t.Setenv("CONTAINER_API_TEST_INT", "9000")
	assert.Equal(t, 9000, util.OptionalIntEnv("CONTAINER_API_TEST_INT", 8080))
	assert.Equal(t, 8080, util.OptionalIntEnv("CONTAINER_API_TEST_UNSET", 8080))

	t.Setenv("CONTAINER_API_TEST_BAD_INT", "eighty")
	assert.Panics(t, func() {
		util.OptionalIntEnv("CONTAINER_API_TEST_BAD_INT", 8080)
	})
}
func TestOptionalBoolEnv(t *testing.T) {
	t.Setenv("CONTAINER_API_TEST_BOOL", "true")
	assert.True(t, util.OptionalBoolEnv("CONTAINER_API_TEST_BOOL"))

	t.Setenv("CONTAINER_API_TEST_BOOL", "yes")
	assert.False(t, util.OptionalBoolEnv("CONTAINER_API_TEST_BOOL"))
	assert.False(t, util.OptionalBoolEnv("CONTAINER_API_TEST_UNSET"))
}
