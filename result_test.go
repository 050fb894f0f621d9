package ladle_test

import (
	"encoding/json"
	"testing"

	"github.com/ladle-app/ladle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_WireShape(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		res := ladle.OK(&ladle.ScrapedRecipe{Title: ladle.String("Cake")})
		payload, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"success":true`)
		assert.NotContains(t, string(payload), `"error"`)

		var back ladle.Result
		require.NoError(t, json.Unmarshal(payload, &back))
		require.True(t, back.Success)
		assert.Equal(t, "Cake", *back.Data.Title)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		res := ladle.Fail(ladle.Errorf(ladle.ETAUTHREQUIRED, "login required").WithHost("example.com"))
		payload, err := json.Marshal(res)
		require.NoError(t, err)

		var back ladle.Result
		require.NoError(t, json.Unmarshal(payload, &back))
		require.False(t, back.Success)
		assert.Nil(t, back.Data)
		assert.Equal(t, "AuthenticationRequired", back.Err.Type)
		assert.Equal(t, "login required", back.Err.Message)
		assert.Equal(t, "example.com", back.Err.Host)
	})

	t.Run("failure from a plain error", func(t *testing.T) {
		t.Parallel()

		res := ladle.Fail(assertableError("boom"))
		require.NotNil(t, res.Err)
		assert.Equal(t, ladle.ETINTERNAL, res.Err.Type)
		assert.Equal(t, "boom", res.Err.Message)
	})

	t.Run("AsError round-trips the failure", func(t *testing.T) {
		t.Parallel()

		res := ladle.Fail(ladle.Errorf(ladle.ETNORECIPE, "nothing found").WithHost("example.com"))
		err := res.AsError()
		require.Error(t, err)
		assert.Equal(t, ladle.ETNORECIPE, ladle.ErrorType(err))
		assert.Equal(t, "nothing found", ladle.ErrorMessage(err))
		assert.Equal(t, "example.com", ladle.ErrorHost(err))

		assert.NoError(t, ladle.OK(nil).AsError())
	})
}

// assertableError is a plain error for testing normalization.
type assertableError string

func (e assertableError) Error() string { return string(e) }
