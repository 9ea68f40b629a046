package instalens

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunner(t *testing.T) {
	assert := assert.New(t)

	t.Run("EndToEnd", func(t *testing.T) {
		dir := t.TempDir()

		followers := filepath.Join(dir, "followers_1.json")
		assert.NoError(ioutil.WriteFile(followers, []byte(`[
			{"string_list_data": [{"href": "https://insta.com/a/"}]},
			{"string_list_data": [{"href": "https://insta.com/b"}]}
		]`), 0644))

		following := filepath.Join(dir, "following.json")
		assert.NoError(ioutil.WriteFile(following, []byte(`{"relationships_following": [
			{"string_list_data": [{"href": "https://insta.com/b/"}]},
			{"string_list_data": [{"href": "https://insta.com/c"}]}
		]}`), 0644))

		output := filepath.Join(dir, "instagram_analysis.txt")

		runner, err := NewRunner(
			WithFollowersFile(followers),
			WithFollowingFile(following),
			WithOutputFile(output),
		)
		assert.NoError(err)
		assert.NoError(runner.Run())

		data, err := ioutil.ReadFile(output)
		assert.NoError(err)

		expected := "--- Instagram List Analysis ---\n" +
			"\n" +
			"Users you follow who DO NOT follow you back:\n" +
			"- https://insta.com/c\n" +
			"\n" +
			"Users who follow you that you DO NOT follow back:\n" +
			"- https://insta.com/a\n" +
			"\n" +
			"Mutual followers (you follow each other):\n" +
			"- https://insta.com/b\n" +
			"\n"
		assert.Equal(expected, string(data))
	})

	t.Run("NoDataSkipsReport", func(t *testing.T) {
		dir := t.TempDir()

		followers := filepath.Join(dir, "followers_1.json")
		assert.NoError(ioutil.WriteFile(followers, []byte(`[]`), 0644))

		following := filepath.Join(dir, "following.json")
		assert.NoError(ioutil.WriteFile(following, []byte(`{"relationships_following": []}`), 0644))

		output := filepath.Join(dir, "instagram_analysis.txt")

		runner, err := NewRunner(
			WithFollowersFile(followers),
			WithFollowingFile(following),
			WithOutputFile(output),
		)
		assert.NoError(err)
		assert.NoError(runner.Run())

		_, err = os.Stat(output)
		assert.True(os.IsNotExist(err))
	})

	t.Run("MissingInputsSkipReport", func(t *testing.T) {
		dir := t.TempDir()
		output := filepath.Join(dir, "instagram_analysis.txt")

		runner, err := NewRunner(
			WithFollowersFile(filepath.Join(dir, "nope.json")),
			WithFollowingFile(filepath.Join(dir, "also-nope.json")),
			WithOutputFile(output),
		)
		assert.NoError(err)
		assert.NoError(runner.Run())

		_, err = os.Stat(output)
		assert.True(os.IsNotExist(err))
	})

	t.Run("WriteFailure", func(t *testing.T) {
		dir := t.TempDir()

		followers := filepath.Join(dir, "followers_1.json")
		assert.NoError(ioutil.WriteFile(followers, []byte(`[
			{"string_list_data": [{"href": "https://insta.com/a"}]}
		]`), 0644))

		runner, err := NewRunner(
			WithFollowersFile(followers),
			WithFollowingFile(filepath.Join(dir, "nope.json")),
			WithOutputFile(filepath.Join(dir, "missing", "out.txt")),
		)
		assert.NoError(err)
		assert.Error(runner.Run())
	})
}
