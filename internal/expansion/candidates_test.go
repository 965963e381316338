package expansion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNorm(t *testing.T) {
	assert.Equal(t, "whey protein", Norm("  Whey   PROTEIN. "))
	assert.Equal(t, "pre workout", Norm("-pre workout;:"))
	assert.Equal(t, "", Norm(" ,. "))
}

func TestExpand(t *testing.T) {
	out := Expand([]string{"whey protein"}, []string{"buy"}, []string{"online"}, []string{"for beginners"})

	assert.Equal(t, []string{
		"whey protein",
		"buy whey protein",
		"whey protein online",
		"whey protein for beginners",
	}, out)
}

func TestExpand_DedupKeepsFirst(t *testing.T) {
	out := Expand([]string{"whey", "buy whey"}, []string{"buy"}, nil, nil)

	assert.Equal(t, []string{"whey", "buy whey", "buy buy whey"}, out)
}

func TestFilter(t *testing.T) {
	candidates := []string{"whey protein", "free whey", "musclefuel whey", "creatine", "proteinking bcaa"}

	out := Filter(candidates, []string{"free"}, []string{""}, []string{"musclefuel"}, []string{"proteinking"})

	assert.Equal(t, []string{"whey protein", "creatine"}, out)
}

func TestReadTermsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand_keywords.csv")
	require.NoError(t, os.WriteFile(path, []byte("\uFEFFMuscleFuel, \"MF Whey\"\nmusclefuel,,mf\n"), 0644))

	terms, err := ReadTermsFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"musclefuel", "mf whey", "mf"}, terms)
}

func TestReadTermsFile_Missing(t *testing.T) {
	terms, err := ReadTermsFile(filepath.Join(t.TempDir(), "absent.csv"))

	assert.NoError(t, err)
	assert.Empty(t, terms)
}
